// Package vocabulary derives the known-word table from stored chat text.
package vocabulary

import (
	"strings"
	"unicode"
)

const vowels = "aeiou"

// Tokenize lowercases text, splits it on whitespace and returns the tokens
// that survive Clean, in order of appearance and with duplicates.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if token, ok := Clean(field); ok {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Clean strips at most one non-letter rune from each end of token. The rest
// must be letters only. One-rune tokens survive only as consonants in a-z.
func Clean(token string) (string, bool) {
	runes := []rune(token)
	if len(runes) > 0 && !unicode.IsLetter(runes[0]) {
		runes = runes[1:]
	}
	if len(runes) == 0 {
		return "", false
	}
	if !unicode.IsLetter(runes[len(runes)-1]) {
		runes = runes[:len(runes)-1]
	}
	if len(runes) == 0 {
		return "", false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return "", false
		}
	}
	if len(runes) == 1 && !isConsonant(runes[0]) {
		return "", false
	}
	return string(runes), true
}

func isConsonant(r rune) bool {
	return r >= 'a' && r <= 'z' && !strings.ContainsRune(vowels, r)
}
