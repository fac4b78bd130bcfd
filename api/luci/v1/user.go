package luciv1

import "time"

type User struct {
	Id             int64     `json:"id"`
	Reference      string    `json:"reference"`
	Name           string    `json:"name"`
	Friendshipness float64   `json:"friendshipness"`
	EmotionResume  *Emotion  `json:"emotion_resume,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ListUsersRequest struct {
	Filter  string `json:"filter,omitempty"`
	OrderBy string `json:"order_by,omitempty"`
}

func (x *ListUsersRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

func (x *ListUsersRequest) GetOrderBy() string {
	if x != nil {
		return x.OrderBy
	}
	return ""
}

type ListUsersResponse struct {
	Users []*User `json:"users"`
}

// UpdateUserRequest records one interaction of a user. Friendshipness and
// EmotionResume are deltas.
type UpdateUserRequest struct {
	Reference      string        `json:"reference"`
	Name           string        `json:"name"`
	Friendshipness *float64      `json:"friendshipness,omitempty"`
	EmotionResume  *EmotionDelta `json:"emotion_resume,omitempty"`
	Message        *MessageInput `json:"message"`
}

func (x *UpdateUserRequest) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}

func (x *UpdateUserRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateUserRequest) GetFriendshipness() float64 {
	if x != nil && x.Friendshipness != nil {
		return *x.Friendshipness
	}
	return 0
}

func (x *UpdateUserRequest) GetEmotionResume() *EmotionDelta {
	if x != nil {
		return x.EmotionResume
	}
	return nil
}

func (x *UpdateUserRequest) GetMessage() *MessageInput {
	if x != nil {
		return x.Message
	}
	return nil
}
