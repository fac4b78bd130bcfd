package luciv1

import "time"

type Word struct {
	Id        int64      `json:"id"`
	Token     string     `json:"token"`
	Language  string     `json:"language,omitempty"`
	PosTag    *string    `json:"pos_tag,omitempty"`
	Lemma     *string    `json:"lemma,omitempty"`
	Entity    *string    `json:"entity,omitempty"`
	Polarity  *float64   `json:"polarity,omitempty"`
	Length    int32      `json:"length"`
	Meanings  []*Meaning `json:"meanings,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type Meaning struct {
	Id      int64  `json:"id"`
	Meaning string `json:"meaning"`
	Context string `json:"context,omitempty"`
}

type PaginationResponse struct {
	Total    int32 `json:"total"`
	PageNo   int32 `json:"page_no"`
	PageSize int32 `json:"page_size"`
}

type ListWordsRequest struct {
	Filter   string `json:"filter,omitempty"`
	OrderBy  string `json:"order_by,omitempty"`
	PageNo   int32  `json:"page_no,omitempty"`
	PageSize int32  `json:"page_size,omitempty"`
}

func (x *ListWordsRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

func (x *ListWordsRequest) GetOrderBy() string {
	if x != nil {
		return x.OrderBy
	}
	return ""
}

func (x *ListWordsRequest) GetPageNo() int32 {
	if x != nil {
		return x.PageNo
	}
	return 0
}

func (x *ListWordsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListWordsResponse struct {
	Words      []*Word             `json:"words"`
	Pagination *PaginationResponse `json:"pagination"`
}

// UpdateWordRequest sets linguistic tags on an existing word. Absent fields
// are kept; blank strings clear the tag.
type UpdateWordRequest struct {
	Token    string   `json:"token"`
	Language *string  `json:"language,omitempty"`
	PosTag   *string  `json:"pos_tag,omitempty"`
	Lemma    *string  `json:"lemma,omitempty"`
	Entity   *string  `json:"entity,omitempty"`
	Polarity *float64 `json:"polarity,omitempty"`
}

func (x *UpdateWordRequest) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

type AddMeaningRequest struct {
	Token   string `json:"token"`
	Meaning string `json:"meaning"`
	Context string `json:"context,omitempty"`
}

func (x *AddMeaningRequest) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

func (x *AddMeaningRequest) GetMeaning() string {
	if x != nil {
		return x.Meaning
	}
	return ""
}

func (x *AddMeaningRequest) GetContext() string {
	if x != nil {
		return x.Context
	}
	return ""
}
