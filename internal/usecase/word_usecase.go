package usecase

import (
	"context"
	"strings"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/repository"
)

// WordUsecase defines business logic for the learned vocabulary.
type WordUsecase interface {
	List(ctx context.Context, query *repository.ListWordQuery) ([]*entity.Word, int64, error)
	UpdateTags(ctx context.Context, token string, tags entity.WordTags) (*entity.Word, error)
	AddMeaning(ctx context.Context, token, meaning, usage string) (*entity.Word, error)
}

const (
	_defaultLimit = int32(20)
	_maxLimit     = int32(1000)
)

type wordUsecase struct {
	repo repository.WordRepository
	tx   repository.TxManager
}

func NewWordUsecase(repo repository.WordRepository, tx repository.TxManager) WordUsecase {
	return &wordUsecase{repo: repo, tx: tx}
}

func (u *wordUsecase) List(ctx context.Context, query *repository.ListWordQuery) ([]*entity.Word, int64, error) {
	q := *query
	if q.PageNo < 1 {
		q.PageNo = 1
	}
	switch {
	case q.PageSize <= 0:
		q.PageSize = _defaultLimit
	case q.PageSize > _maxLimit:
		q.PageSize = _maxLimit
	}
	return u.repo.List(ctx, &q)
}

func (u *wordUsecase) UpdateTags(ctx context.Context, token string, tags entity.WordTags) (*entity.Word, error) {
	token, err := normalizeToken(token)
	if err != nil {
		return nil, err
	}
	var out *entity.Word
	err = u.tx.WithTx(ctx, func(ctx context.Context) error {
		word, err := u.repo.GetByToken(ctx, token)
		if err != nil {
			return err
		}
		tags.Apply(word)
		updated, err := u.repo.Update(ctx, word)
		if err != nil {
			return err
		}
		updated.Meanings = word.Meanings
		out = updated
		return nil
	})
	return out, err
}

func (u *wordUsecase) AddMeaning(ctx context.Context, token, meaning, usage string) (*entity.Word, error) {
	token, err := normalizeToken(token)
	if err != nil {
		return nil, err
	}
	meaning = strings.TrimSpace(meaning)
	if meaning == "" {
		return nil, entity.ErrMeaningRequired
	}
	var out *entity.Word
	err = u.tx.WithTx(ctx, func(ctx context.Context) error {
		word, err := u.repo.GetByToken(ctx, token)
		if err != nil {
			return err
		}
		created, err := u.repo.AddMeaning(ctx, &entity.Meaning{WordID: word.ID, Meaning: meaning, Context: strings.TrimSpace(usage)})
		if err != nil {
			return err
		}
		word.Meanings = append(word.Meanings, *created)
		out = word
		return nil
	})
	return out, err
}

func normalizeToken(token string) (string, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" || strings.ContainsAny(token, " \t\r\n") {
		return "", entity.ErrInvalidToken
	}
	return token, nil
}
