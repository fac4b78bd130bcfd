package mapping

import (
	"github.com/samber/lo"

	luciv1 "github.com/eslsoft/luci/api/luci/v1"
	"github.com/eslsoft/luci/internal/entity"
)

func ToPbWord(in *entity.Word) *luciv1.Word {
	if in == nil {
		return nil
	}
	return &luciv1.Word{
		Id:       in.ID,
		Token:    in.Token,
		Language: string(in.Language),
		PosTag:   copyPtr(in.PosTag),
		Lemma:    copyPtr(in.Lemma),
		Entity:   copyPtr(in.Entity),
		Polarity: copyPtr(in.Polarity),
		Length:   int32(in.Length),
		Meanings: lo.Map(in.Meanings, func(m entity.Meaning, _ int) *luciv1.Meaning {
			return &luciv1.Meaning{Id: m.ID, Meaning: m.Meaning, Context: m.Context}
		}),
		CreatedAt: in.CreatedAt,
	}
}

func FromPbWordTags(in *luciv1.UpdateWordRequest) entity.WordTags {
	if in == nil {
		return entity.WordTags{}
	}
	tags := entity.WordTags{
		PosTag:   copyPtr(in.PosTag),
		Lemma:    copyPtr(in.Lemma),
		Entity:   copyPtr(in.Entity),
		Polarity: copyPtr(in.Polarity),
	}
	if in.Language != nil {
		tags.Language = lo.ToPtr(entity.Language(*in.Language))
	}
	return tags
}
