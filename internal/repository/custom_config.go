package repository

import (
	"context"

	"github.com/eslsoft/luci/internal/entity"
)

// CustomConfigRepository defines data access for per-deployment settings.
type CustomConfigRepository interface {
	Get(ctx context.Context, reference string) (*entity.CustomConfig, error)
	GetOrCreate(ctx context.Context, reference string) (*entity.CustomConfig, error)
	Update(ctx context.Context, config *entity.CustomConfig) (*entity.CustomConfig, error)
}
