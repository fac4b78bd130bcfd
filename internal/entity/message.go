package entity

import (
	"strings"
	"time"
)

// Message is one utterance. PossibleResponses holds the one-hop response set.
type Message struct {
	ID                int64
	Reference         string
	GlobalIntention   string
	SpecificIntention string
	Text              string
	UserID            *int64
	Author            string
	CreatedAt         time.Time
	PossibleResponses []*Message
}

// MessageInput is the writable part of a message.
type MessageInput struct {
	GlobalIntention   string
	SpecificIntention string
	Text              string
}

// Validate requires non-empty text.
func (m *MessageInput) Validate() error {
	if m == nil {
		return ErrMessageRequired
	}
	if strings.TrimSpace(m.Text) == "" {
		return ErrMessageTextRequired
	}
	return nil
}

var commandPrefixes = []string{"!", "http", ";;"}

// IsCommandLike reports whether text looks like a bot command or a bare link;
// such messages are never offered as responses.
func IsCommandLike(text string) bool {
	for _, p := range commandPrefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}
