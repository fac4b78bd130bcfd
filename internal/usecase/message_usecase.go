package usecase

import (
	"context"
	"strings"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/repository"
)

// MessageUsecase lists messages and maintains the possible-response graph.
type MessageUsecase interface {
	List(ctx context.Context, query *repository.ListMessageQuery) ([]*entity.Message, error)
	// AssignResponse stores response and links it from every message whose
	// text contains text, ignoring case. It returns the linked messages.
	AssignResponse(ctx context.Context, text string, response *entity.MessageInput) ([]*entity.Message, error)
	LinkResponse(ctx context.Context, messageID, responseID int64) error
}

type messageUsecase struct {
	repo repository.MessageRepository
	tx   repository.TxManager
}

func NewMessageUsecase(repo repository.MessageRepository, tx repository.TxManager) MessageUsecase {
	return &messageUsecase{repo: repo, tx: tx}
}

func (u *messageUsecase) List(ctx context.Context, query *repository.ListMessageQuery) ([]*entity.Message, error) {
	return u.repo.List(ctx, query)
}

func (u *messageUsecase) AssignResponse(ctx context.Context, text string, response *entity.MessageInput) ([]*entity.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, entity.ErrMessageTextRequired
	}
	if err := response.Validate(); err != nil {
		return nil, err
	}

	var matched []*entity.Message
	err := u.tx.WithTx(ctx, func(ctx context.Context) error {
		// matches are resolved before the response exists so it never links to itself
		found, err := u.repo.FindByTextFold(ctx, text)
		if err != nil {
			return err
		}
		created, err := u.repo.Create(ctx, &entity.Message{
			GlobalIntention:   response.GlobalIntention,
			SpecificIntention: response.SpecificIntention,
			Text:              response.Text,
		})
		if err != nil {
			return err
		}
		for _, msg := range found {
			if err := u.repo.AddResponse(ctx, msg.ID, created.ID); err != nil {
				return err
			}
		}
		matched = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return matched, nil
	}

	ids := make([]int64, 0, len(matched))
	for _, msg := range matched {
		ids = append(ids, msg.ID)
	}
	responses, err := u.repo.ListResponses(ctx, ids...)
	if err != nil {
		return nil, err
	}
	for _, msg := range matched {
		msg.PossibleResponses = responses[msg.ID]
	}
	return matched, nil
}

func (u *messageUsecase) LinkResponse(ctx context.Context, messageID, responseID int64) error {
	if messageID <= 0 || responseID <= 0 {
		return entity.ErrInvalidMessageID
	}
	return u.tx.WithTx(ctx, func(ctx context.Context) error {
		if _, err := u.repo.GetByID(ctx, messageID); err != nil {
			return err
		}
		if _, err := u.repo.GetByID(ctx, responseID); err != nil {
			return err
		}
		return u.repo.AddResponse(ctx, messageID, responseID)
	})
}
