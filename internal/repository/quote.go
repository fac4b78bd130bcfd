package repository

import (
	"context"

	"github.com/eslsoft/luci/internal/entity"
)

type ListQuoteQuery struct {
	Reference string
	FilterOrder
}

// QuoteRepository defines data access for quotes.
type QuoteRepository interface {
	TextSource
	// GetOrCreate returns the quote matching (reference, text), inserting it when absent.
	GetOrCreate(ctx context.Context, quote *entity.Quote) (*entity.Quote, error)
	List(ctx context.Context, query *ListQuoteQuery) ([]*entity.Quote, error)
}
