package usecase

import (
	"context"
	"strings"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/repository"
)

// CustomConfigUsecase manages per-deployment settings.
type CustomConfigUsecase interface {
	Get(ctx context.Context, reference string) (*entity.CustomConfig, error)
	Update(ctx context.Context, reference string, patch entity.CustomConfigPatch) (*entity.CustomConfig, error)
}

type customConfigUsecase struct {
	repo repository.CustomConfigRepository
	tx   repository.TxManager
}

func NewCustomConfigUsecase(repo repository.CustomConfigRepository, tx repository.TxManager) CustomConfigUsecase {
	return &customConfigUsecase{repo: repo, tx: tx}
}

func (u *customConfigUsecase) Get(ctx context.Context, reference string) (*entity.CustomConfig, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, entity.ErrReferenceRequired
	}
	return u.repo.Get(ctx, reference)
}

func (u *customConfigUsecase) Update(ctx context.Context, reference string, patch entity.CustomConfigPatch) (*entity.CustomConfig, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, entity.ErrReferenceRequired
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	var out *entity.CustomConfig
	err := u.tx.WithTx(ctx, func(ctx context.Context) error {
		config, err := u.repo.GetOrCreate(ctx, reference)
		if err != nil {
			return err
		}
		patch.Apply(config)
		out, err = u.repo.Update(ctx, config)
		return err
	})
	return out, err
}
