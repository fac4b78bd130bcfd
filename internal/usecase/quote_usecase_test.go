package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/repository"
)

func TestQuoteCreate_Deduplicates(t *testing.T) {
	repo := &fakeQuoteRepo{}
	uc := NewQuoteUsecase(repo)
	ctx := context.Background()

	first, err := uc.Create(ctx, &entity.Quote{Reference: " r ", Text: "carpe diem", Author: " Horace "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := uc.Create(ctx, &entity.Quote{Reference: "r", Text: "carpe diem", Author: "Horace"})
	if err != nil {
		t.Fatalf("create again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same quote, got %d and %d", first.ID, second.ID)
	}
	if first.Author != "Horace" || first.Reference != "r" {
		t.Fatalf("expected trimmed fields, got %+v", first)
	}

	list, err := uc.List(ctx, &repository.ListQuoteQuery{Reference: "r"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(list))
	}
}

func TestQuoteCreate_Validation(t *testing.T) {
	uc := NewQuoteUsecase(&fakeQuoteRepo{})
	cases := map[string]*entity.Quote{
		"nil":       nil,
		"reference": {Text: "x", Author: "a"},
		"text":      {Reference: "r", Text: " ", Author: "a"},
		"author":    {Reference: "r", Text: "x"},
		"too long":  {Reference: "r", Text: strings.Repeat("a", entity.MaxQuoteBytes+1), Author: "a"},
	}
	for name, q := range cases {
		if _, err := uc.Create(context.Background(), q); !errors.Is(err, entity.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestQuoteList_RequiresReference(t *testing.T) {
	uc := NewQuoteUsecase(&fakeQuoteRepo{})
	if _, err := uc.List(context.Background(), &repository.ListQuoteQuery{}); !errors.Is(err, entity.ErrReferenceRequired) {
		t.Fatalf("expected reference required, got %v", err)
	}
}
