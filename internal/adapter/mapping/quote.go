package mapping

import (
	luciv1 "github.com/eslsoft/luci/api/luci/v1"
	"github.com/eslsoft/luci/internal/entity"
)

func ToPbQuote(in *entity.Quote) *luciv1.Quote {
	if in == nil {
		return nil
	}
	return &luciv1.Quote{
		Id:        in.ID,
		Reference: in.Reference,
		Quote:     in.Text,
		Author:    in.Author,
		CreatedAt: in.CreatedAt,
	}
}

func FromPbCreateQuote(in *luciv1.CreateQuoteRequest) *entity.Quote {
	return &entity.Quote{
		Reference: in.GetReference(),
		Text:      in.GetQuote(),
		Author:    in.GetAuthor(),
	}
}
