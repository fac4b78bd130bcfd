package luciv1

import "time"

type Message struct {
	Id                int64      `json:"id"`
	Reference         string     `json:"reference"`
	GlobalIntention   string     `json:"global_intention"`
	SpecificIntention string     `json:"specific_intention"`
	Text              string     `json:"text"`
	UserId            *int64     `json:"user_id,omitempty"`
	Author            string     `json:"author,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	PossibleResponses []*Message `json:"possible_responses,omitempty"`
}

type MessageInput struct {
	GlobalIntention   string `json:"global_intention"`
	SpecificIntention string `json:"specific_intention"`
	Text              string `json:"text"`
}

func (x *MessageInput) GetGlobalIntention() string {
	if x != nil {
		return x.GlobalIntention
	}
	return ""
}

func (x *MessageInput) GetSpecificIntention() string {
	if x != nil {
		return x.SpecificIntention
	}
	return ""
}

func (x *MessageInput) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type ListMessagesRequest struct {
	Filter  string `json:"filter,omitempty"`
	OrderBy string `json:"order_by,omitempty"`
}

func (x *ListMessagesRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

func (x *ListMessagesRequest) GetOrderBy() string {
	if x != nil {
		return x.OrderBy
	}
	return ""
}

type ListMessagesResponse struct {
	Messages []*Message `json:"messages"`
}

type AssignResponseRequest struct {
	Text     string        `json:"text"`
	Response *MessageInput `json:"response"`
}

func (x *AssignResponseRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *AssignResponseRequest) GetResponse() *MessageInput {
	if x != nil {
		return x.Response
	}
	return nil
}

type AssignResponseResponse struct {
	Messages []*Message `json:"messages"`
}

type LinkResponseRequest struct {
	MessageId  int64 `json:"message_id"`
	ResponseId int64 `json:"response_id"`
}

func (x *LinkResponseRequest) GetMessageId() int64 {
	if x != nil {
		return x.MessageId
	}
	return 0
}

func (x *LinkResponseRequest) GetResponseId() int64 {
	if x != nil {
		return x.ResponseId
	}
	return 0
}

type LinkResponseResponse struct{}
