package entity

import (
	"strings"
	"time"
)

// User is a chat participant keyed by a composite reference.
type User struct {
	ID             int64
	Reference      string
	Name           string
	Friendshipness float64
	EmotionID      *int64
	Emotion        *Emotion
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserUpdate is the payload of a user interaction: the new display name, the
// affect increments and the message the user just sent.
type UserUpdate struct {
	Reference      string
	Name           string
	Friendshipness float64
	Emotion        EmotionDelta
	Message        *MessageInput
}

// Validate checks required fields and trims the inputs in place.
func (u *UserUpdate) Validate() error {
	u.Reference = strings.TrimSpace(u.Reference)
	u.Name = strings.TrimSpace(u.Name)
	if u.Reference == "" {
		return ErrReferenceRequired
	}
	if u.Name == "" {
		return ErrUserNameRequired
	}
	if u.Message == nil {
		return ErrMessageRequired
	}
	return u.Message.Validate()
}
