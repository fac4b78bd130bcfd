// Package textcodec converts free text to the byte form kept in storage.
package textcodec

import (
	"errors"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by Decode when stored bytes are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stored text is not valid utf-8")

// Encode returns the UTF-8 bytes of s.
func Encode(s string) []byte {
	return []byte(s)
}

// Decode returns the text held in b.
func Decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
