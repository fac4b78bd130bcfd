package mapping

import (
	luciv1 "github.com/eslsoft/luci/api/luci/v1"
	"github.com/eslsoft/luci/internal/entity"
)

func ToPbUser(in *entity.User) *luciv1.User {
	if in == nil {
		return nil
	}
	return &luciv1.User{
		Id:             in.ID,
		Reference:      in.Reference,
		Name:           in.Name,
		Friendshipness: in.Friendshipness,
		EmotionResume:  ToPbEmotion(in.Emotion),
		CreatedAt:      in.CreatedAt,
		UpdatedAt:      in.UpdatedAt,
	}
}

func FromPbUpdateUser(in *luciv1.UpdateUserRequest) *entity.UserUpdate {
	out := &entity.UserUpdate{
		Reference:      in.GetReference(),
		Name:           in.GetName(),
		Friendshipness: in.GetFriendshipness(),
		Emotion:        FromPbEmotionDelta(in.GetEmotionResume()),
	}
	if msg := in.GetMessage(); msg != nil {
		out.Message = FromPbMessageInput(msg)
	}
	return out
}
