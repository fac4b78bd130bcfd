package entity

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Word is a vocabulary entry learned from chat text. Length always equals the
// rune count of Token.
type Word struct {
	ID        int64
	Token     string
	Language  Language
	PosTag    *string
	Lemma     *string
	Entity    *string
	Polarity  *float64
	Length    int
	Meanings  []Meaning
	CreatedAt time.Time
}

// NewWord builds a word with its derived length.
func NewWord(token string) *Word {
	w := &Word{Token: token}
	w.Derive()
	return w
}

// Derive recomputes fields that depend on Token.
func (w *Word) Derive() {
	w.Length = utf8.RuneCountInString(w.Token)
}

// Meaning is one sense of a word.
type Meaning struct {
	ID      int64
	WordID  int64
	Meaning string
	Context string
}

// WordTags is an optional update of a word's linguistic annotations.
type WordTags struct {
	Language *Language
	PosTag   *string
	Lemma    *string
	Entity   *string
	Polarity *float64
}

// Apply writes the provided tags onto w and re-derives its length.
func (t WordTags) Apply(w *Word) {
	if t.Language != nil {
		w.Language = NormalizeLanguage(*t.Language)
	}
	if t.PosTag != nil {
		w.PosTag = trimmedOrNil(*t.PosTag)
	}
	if t.Lemma != nil {
		w.Lemma = trimmedOrNil(*t.Lemma)
	}
	if t.Entity != nil {
		w.Entity = trimmedOrNil(*t.Entity)
	}
	if t.Polarity != nil {
		p := *t.Polarity
		w.Polarity = &p
	}
	w.Derive()
}

func trimmedOrNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
