package repository

import (
	"context"

	"github.com/eslsoft/luci/internal/entity"
)

// EmotionRepository defines data access for emotion records.
type EmotionRepository interface {
	// GetOrCreate returns the emotion for reference, inserting a zero vector
	// when absent. Inside a transaction the row stays locked until commit.
	GetOrCreate(ctx context.Context, reference string) (*entity.Emotion, error)
	GetByID(ctx context.Context, id int64) (*entity.Emotion, error)
	ListByReference(ctx context.Context, reference string) ([]*entity.Emotion, error)
	UpdateVector(ctx context.Context, emotion *entity.Emotion) (*entity.Emotion, error)
}
