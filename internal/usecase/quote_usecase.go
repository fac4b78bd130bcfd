package usecase

import (
	"context"
	"strings"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/repository"
)

// QuoteUsecase lists and stores quotes.
type QuoteUsecase interface {
	List(ctx context.Context, query *repository.ListQuoteQuery) ([]*entity.Quote, error)
	// Create returns the stored quote for (reference, text), inserting it when absent.
	Create(ctx context.Context, quote *entity.Quote) (*entity.Quote, error)
}

type quoteUsecase struct {
	repo repository.QuoteRepository
}

func NewQuoteUsecase(repo repository.QuoteRepository) QuoteUsecase {
	return &quoteUsecase{repo: repo}
}

func (u *quoteUsecase) List(ctx context.Context, query *repository.ListQuoteQuery) ([]*entity.Quote, error) {
	q := *query
	q.Reference = strings.TrimSpace(q.Reference)
	if q.Reference == "" {
		return nil, entity.ErrReferenceRequired
	}
	return u.repo.List(ctx, &q)
}

func (u *quoteUsecase) Create(ctx context.Context, quote *entity.Quote) (*entity.Quote, error) {
	if quote == nil {
		return nil, entity.ErrQuoteRequired
	}
	q := *quote
	if err := q.Normalize(); err != nil {
		return nil, err
	}
	return u.repo.GetOrCreate(ctx, &q)
}
