package luciv1

import "time"

type Quote struct {
	Id        int64     `json:"id"`
	Reference string    `json:"reference"`
	Quote     string    `json:"quote"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type ListQuotesRequest struct {
	Reference string `json:"reference"`
	Filter    string `json:"filter,omitempty"`
	OrderBy   string `json:"order_by,omitempty"`
}

func (x *ListQuotesRequest) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}

func (x *ListQuotesRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

func (x *ListQuotesRequest) GetOrderBy() string {
	if x != nil {
		return x.OrderBy
	}
	return ""
}

type ListQuotesResponse struct {
	Quotes []*Quote `json:"quotes"`
}

type CreateQuoteRequest struct {
	Reference string `json:"reference"`
	Quote     string `json:"quote"`
	Author    string `json:"author"`
}

func (x *CreateQuoteRequest) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}

func (x *CreateQuoteRequest) GetQuote() string {
	if x != nil {
		return x.Quote
	}
	return ""
}

func (x *CreateQuoteRequest) GetAuthor() string {
	if x != nil {
		return x.Author
	}
	return ""
}
