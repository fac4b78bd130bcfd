package repository

import (
	"context"

	"github.com/eslsoft/luci/internal/entity"
)

type ListUserQuery struct {
	FilterOrder
}

// UserRepository defines data access for users.
type UserRepository interface {
	// GetOrCreate returns the user for reference and whether it was just
	// inserted. Inside a transaction the row stays locked until commit.
	GetOrCreate(ctx context.Context, reference string) (*entity.User, bool, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	// List returns users with their emotion attached.
	List(ctx context.Context, query *ListUserQuery) ([]*entity.User, error)
}
