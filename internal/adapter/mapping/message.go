package mapping

import (
	"github.com/samber/lo"

	luciv1 "github.com/eslsoft/luci/api/luci/v1"
	"github.com/eslsoft/luci/internal/entity"
)

func ToPbMessage(in *entity.Message) *luciv1.Message {
	if in == nil {
		return nil
	}
	return &luciv1.Message{
		Id:                in.ID,
		Reference:         in.Reference,
		GlobalIntention:   in.GlobalIntention,
		SpecificIntention: in.SpecificIntention,
		Text:              in.Text,
		UserId:            copyPtr(in.UserID),
		Author:            in.Author,
		CreatedAt:         in.CreatedAt,
		PossibleResponses: ToPbMessages(in.PossibleResponses),
	}
}

func ToPbMessages(in []*entity.Message) []*luciv1.Message {
	return lo.Map(in, func(m *entity.Message, _ int) *luciv1.Message {
		return ToPbMessage(m)
	})
}

// FromPbMessageInput returns nil for a nil input so validation reports the
// missing message.
func FromPbMessageInput(in *luciv1.MessageInput) *entity.MessageInput {
	if in == nil {
		return nil
	}
	return &entity.MessageInput{
		GlobalIntention:   in.GetGlobalIntention(),
		SpecificIntention: in.GetSpecificIntention(),
		Text:              in.GetText(),
	}
}
