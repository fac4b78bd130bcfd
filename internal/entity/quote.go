package entity

import (
	"strings"
	"time"
)

// MaxQuoteBytes bounds the encoded size of a quote.
const MaxQuoteBytes = 1000

// Quote is a canonical quotation scoped by reference.
type Quote struct {
	ID        int64
	Reference string
	Text      string
	Author    string
	CreatedAt time.Time
}

// Normalize trims the quote fields and validates them.
func (q *Quote) Normalize() error {
	q.Reference = strings.TrimSpace(q.Reference)
	q.Author = strings.TrimSpace(q.Author)
	if q.Reference == "" {
		return ErrReferenceRequired
	}
	if strings.TrimSpace(q.Text) == "" {
		return ErrQuoteRequired
	}
	if len(q.Text) > MaxQuoteBytes {
		return ErrQuoteTooLong
	}
	if q.Author == "" {
		return ErrAuthorRequired
	}
	return nil
}
