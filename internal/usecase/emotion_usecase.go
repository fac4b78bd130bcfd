package usecase

import (
	"context"
	"strings"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/repository"
)

// EmotionUsecase reads and accumulates emotion vectors by reference.
type EmotionUsecase interface {
	List(ctx context.Context, reference string) ([]*entity.Emotion, error)
	// Update creates the emotion when absent and applies delta with clamping.
	// The read-modify-write runs in one transaction.
	Update(ctx context.Context, reference string, delta entity.EmotionDelta) (*entity.Emotion, error)
}

type emotionUsecase struct {
	repo repository.EmotionRepository
	tx   repository.TxManager
}

func NewEmotionUsecase(repo repository.EmotionRepository, tx repository.TxManager) EmotionUsecase {
	return &emotionUsecase{repo: repo, tx: tx}
}

func (u *emotionUsecase) List(ctx context.Context, reference string) ([]*entity.Emotion, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, entity.ErrReferenceRequired
	}
	return u.repo.ListByReference(ctx, reference)
}

func (u *emotionUsecase) Update(ctx context.Context, reference string, delta entity.EmotionDelta) (*entity.Emotion, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, entity.ErrReferenceRequired
	}
	var out *entity.Emotion
	err := u.tx.WithTx(ctx, func(ctx context.Context) error {
		emotion, err := u.repo.GetOrCreate(ctx, reference)
		if err != nil {
			return err
		}
		out, err = applyEmotion(ctx, u.repo, emotion, delta)
		return err
	})
	return out, err
}

// applyEmotion accumulates delta onto a locked emotion row. A zero delta
// leaves the row untouched.
func applyEmotion(ctx context.Context, repo repository.EmotionRepository, emotion *entity.Emotion, delta entity.EmotionDelta) (*entity.Emotion, error) {
	if delta.IsZero() {
		return emotion, nil
	}
	emotion.EmotionVector = emotion.Apply(delta)
	return repo.UpdateVector(ctx, emotion)
}
