package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/repository"
)

func TestWordList_ClampsPagination(t *testing.T) {
	tests := []struct {
		name     string
		in       repository.Pagination
		wantNo   int32
		wantSize int32
	}{
		{"defaults", repository.Pagination{}, 1, _defaultLimit},
		{"too large", repository.Pagination{PageNo: 3, PageSize: 5000}, 3, _maxLimit},
		{"kept", repository.Pagination{PageNo: 2, PageSize: 10}, 2, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeWordRepo("alpha")
			uc := NewWordUsecase(repo, &fakeTx{})
			if _, _, err := uc.List(context.Background(), &repository.ListWordQuery{Pagination: tt.in}); err != nil {
				t.Fatalf("list: %v", err)
			}
			if repo.lastQuery.PageNo != tt.wantNo || repo.lastQuery.PageSize != tt.wantSize {
				t.Fatalf("got page %d size %d", repo.lastQuery.PageNo, repo.lastQuery.PageSize)
			}
		})
	}
}

func TestWordUpdateTags(t *testing.T) {
	repo := newFakeWordRepo("casa")
	uc := NewWordUsecase(repo, &fakeTx{})

	lang := entity.Language("PT")
	got, err := uc.UpdateTags(context.Background(), " Casa ", entity.WordTags{
		Language: &lang,
		PosTag:   lo.ToPtr("NOUN"),
		Lemma:    lo.ToPtr("  "),
	})
	if err != nil {
		t.Fatalf("update tags: %v", err)
	}
	if got.Language != entity.LanguagePortuguese {
		t.Fatalf("expected pt, got %q", got.Language)
	}
	if got.PosTag == nil || *got.PosTag != "NOUN" || got.Lemma != nil {
		t.Fatalf("unexpected tags: pos=%v lemma=%v", got.PosTag, got.Lemma)
	}
	if got.Length != 4 {
		t.Fatalf("expected length 4, got %d", got.Length)
	}

	if _, err := uc.UpdateTags(context.Background(), "missing", entity.WordTags{}); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := uc.UpdateTags(context.Background(), "two words", entity.WordTags{}); !errors.Is(err, entity.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestWordAddMeaning(t *testing.T) {
	repo := newFakeWordRepo("casa")
	uc := NewWordUsecase(repo, &fakeTx{})

	got, err := uc.AddMeaning(context.Background(), "casa", " house ", " a casa é grande ")
	if err != nil {
		t.Fatalf("add meaning: %v", err)
	}
	if len(got.Meanings) != 1 {
		t.Fatalf("expected one meaning, got %d", len(got.Meanings))
	}
	m := got.Meanings[0]
	if m.Meaning != "house" || m.Context != "a casa é grande" || m.WordID != got.ID {
		t.Fatalf("unexpected meaning %+v", m)
	}

	if _, err := uc.AddMeaning(context.Background(), "casa", "", ""); !errors.Is(err, entity.ErrMeaningRequired) {
		t.Fatalf("expected meaning required, got %v", err)
	}
}
