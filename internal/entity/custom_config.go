package entity

import "unicode/utf8"

const (
	MaxServerNameLength  = 100
	MaxMainChannelLength = 35
)

// CustomConfig holds per-deployment bot settings.
type CustomConfig struct {
	ID                      int64
	Reference               string
	ServerName              *string
	MainChannel             *string
	AllowAutoSendMessages   bool
	FilterOffensiveMessages bool
	AllowLearningFromChat   bool
}

// NewCustomConfig returns the defaults for a reference: every toggle enabled.
func NewCustomConfig(reference string) *CustomConfig {
	return &CustomConfig{
		Reference:               reference,
		AllowAutoSendMessages:   true,
		FilterOffensiveMessages: true,
		AllowLearningFromChat:   true,
	}
}

// CustomConfigPatch lists optional changes. Empty strings are ignored.
type CustomConfigPatch struct {
	ServerName              *string
	MainChannel             *string
	AllowAutoSendMessages   *bool
	FilterOffensiveMessages *bool
	AllowLearningFromChat   *bool
}

// Validate checks string lengths.
func (p CustomConfigPatch) Validate() error {
	if p.ServerName != nil && utf8.RuneCountInString(*p.ServerName) > MaxServerNameLength {
		return ErrServerNameTooLong
	}
	if p.MainChannel != nil && utf8.RuneCountInString(*p.MainChannel) > MaxMainChannelLength {
		return ErrMainChannelTooLong
	}
	return nil
}

// Apply writes the provided fields onto c.
func (p CustomConfigPatch) Apply(c *CustomConfig) {
	if p.ServerName != nil && *p.ServerName != "" {
		name := *p.ServerName
		c.ServerName = &name
	}
	if p.MainChannel != nil && *p.MainChannel != "" {
		channel := *p.MainChannel
		c.MainChannel = &channel
	}
	if p.AllowAutoSendMessages != nil {
		c.AllowAutoSendMessages = *p.AllowAutoSendMessages
	}
	if p.FilterOffensiveMessages != nil {
		c.FilterOffensiveMessages = *p.FilterOffensiveMessages
	}
	if p.AllowLearningFromChat != nil {
		c.AllowLearningFromChat = *p.AllowLearningFromChat
	}
}
