package mapping

import (
	luciv1 "github.com/eslsoft/luci/api/luci/v1"
	"github.com/eslsoft/luci/internal/entity"
)

func ToPbCustomConfig(in *entity.CustomConfig) *luciv1.CustomConfig {
	if in == nil {
		return nil
	}
	return &luciv1.CustomConfig{
		Id:                      in.ID,
		Reference:               in.Reference,
		ServerName:              copyPtr(in.ServerName),
		MainChannel:             copyPtr(in.MainChannel),
		AllowAutoSendMessages:   in.AllowAutoSendMessages,
		FilterOffensiveMessages: in.FilterOffensiveMessages,
		AllowLearningFromChat:   in.AllowLearningFromChat,
	}
}

func FromPbCustomConfigPatch(in *luciv1.UpdateCustomConfigRequest) entity.CustomConfigPatch {
	if in == nil {
		return entity.CustomConfigPatch{}
	}
	return entity.CustomConfigPatch{
		ServerName:              copyPtr(in.ServerName),
		MainChannel:             copyPtr(in.MainChannel),
		AllowAutoSendMessages:   copyPtr(in.AllowAutoSendMessages),
		FilterOffensiveMessages: copyPtr(in.FilterOffensiveMessages),
		AllowLearningFromChat:   copyPtr(in.AllowLearningFromChat),
	}
}
