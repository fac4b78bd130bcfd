package mapping

import (
	luciv1 "github.com/eslsoft/luci/api/luci/v1"
	"github.com/eslsoft/luci/internal/entity"
)

func ToPbEmotion(in *entity.Emotion) *luciv1.Emotion {
	if in == nil {
		return nil
	}
	return &luciv1.Emotion{
		Id:           in.ID,
		Reference:    in.Reference,
		Pleasantness: in.Pleasantness,
		Attention:    in.Attention,
		Sensitivity:  in.Sensitivity,
		Aptitude:     in.Aptitude,
		CreatedAt:    in.CreatedAt,
		UpdatedAt:    in.UpdatedAt,
	}
}

// FromPbEmotionDelta keeps absent dimensions absent so they are not touched.
func FromPbEmotionDelta(in *luciv1.EmotionDelta) entity.EmotionDelta {
	if in == nil {
		return entity.EmotionDelta{}
	}
	return entity.EmotionDelta{
		Pleasantness: copyPtr(in.Pleasantness),
		Attention:    copyPtr(in.Attention),
		Sensitivity:  copyPtr(in.Sensitivity),
		Aptitude:     copyPtr(in.Aptitude),
	}
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
