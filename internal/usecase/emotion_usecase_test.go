package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/eslsoft/luci/internal/entity"
)

func TestEmotionUpdate_CreatesAndClamps(t *testing.T) {
	repo := newFakeEmotionRepo()
	uc := NewEmotionUsecase(repo, &fakeTx{})
	ctx := context.Background()

	delta := entity.EmotionDelta{}.With(entity.DimensionAttention, 6).With(entity.DimensionSensitivity, -1)
	for i := 0; i < 2; i++ {
		if _, err := uc.Update(ctx, "ref", delta); err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
	}

	list, err := uc.List(ctx, "ref")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one emotion, got %d", len(list))
	}
	got := list[0]
	if got.Attention != entity.EmotionBound {
		t.Fatalf("expected attention clamped to %v, got %v", entity.EmotionBound, got.Attention)
	}
	if got.Sensitivity != -2 {
		t.Fatalf("expected sensitivity -2, got %v", got.Sensitivity)
	}
	if got.Pleasantness != 0 || got.Aptitude != 0 {
		t.Fatalf("absent dimensions must stay untouched: %+v", got.EmotionVector)
	}
}

func TestEmotionUpdate_ZeroDeltaMaterializes(t *testing.T) {
	repo := newFakeEmotionRepo()
	uc := NewEmotionUsecase(repo, &fakeTx{})

	got, err := uc.Update(context.Background(), "ref", entity.EmotionDelta{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID == 0 || got.EmotionVector != (entity.EmotionVector{}) {
		t.Fatalf("expected a zero emotion row, got %+v", got)
	}
	if repo.count() != 1 {
		t.Fatalf("expected one row, got %d", repo.count())
	}
}

func TestEmotionUsecase_RequiresReference(t *testing.T) {
	uc := NewEmotionUsecase(newFakeEmotionRepo(), &fakeTx{})
	if _, err := uc.List(context.Background(), "  "); !errors.Is(err, entity.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := uc.Update(context.Background(), "", entity.EmotionDelta{}); !errors.Is(err, entity.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
