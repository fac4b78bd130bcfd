package repository

import (
	"context"

	"github.com/eslsoft/luci/internal/entity"
)

type ListMessageQuery struct {
	FilterOrder
}

// MessageRepository defines data access for messages and their response graph.
type MessageRepository interface {
	TextSource
	Create(ctx context.Context, message *entity.Message) (*entity.Message, error)
	GetByID(ctx context.Context, id int64) (*entity.Message, error)
	// List returns messages with author and one-hop possible responses.
	List(ctx context.Context, query *ListMessageQuery) ([]*entity.Message, error)
	// FindByTextFold returns messages whose text contains needle, ignoring case.
	FindByTextFold(ctx context.Context, needle string) ([]*entity.Message, error)
	// AddResponse links response to message. Adding an existing edge is a no-op.
	AddResponse(ctx context.Context, messageID, responseID int64) error
	ListResponses(ctx context.Context, messageIDs ...int64) (map[int64][]*entity.Message, error)
}
