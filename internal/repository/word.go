package repository

import (
	"context"

	"github.com/eslsoft/luci/internal/entity"
)

type ListWordQuery struct {
	Pagination
	FilterOrder
}

// WordRepository defines data access for vocabulary entries.
type WordRepository interface {
	// CreateIfAbsent inserts the word unless its token exists and reports
	// whether a row was created. Existing rows are never modified.
	CreateIfAbsent(ctx context.Context, word *entity.Word) (bool, error)
	GetByToken(ctx context.Context, token string) (*entity.Word, error)
	Update(ctx context.Context, word *entity.Word) (*entity.Word, error)
	List(ctx context.Context, query *ListWordQuery) ([]*entity.Word, int64, error)
	AddMeaning(ctx context.Context, meaning *entity.Meaning) (*entity.Meaning, error)
}
