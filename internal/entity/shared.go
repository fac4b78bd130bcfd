package entity

import "strings"

// Language is an ISO-style language code attached to vocabulary.
type Language string

const (
	LanguageUnspecified Language = ""
	LanguageEnglish     Language = "en"
	LanguagePortuguese  Language = "pt"
	LanguageSpanish     Language = "es"
)

// Code returns the lowercase language code (without defaulting).
func (l Language) Code() string {
	return strings.ToLower(strings.TrimSpace(string(l)))
}

// NormalizeLanguage lowercases the code; unknown codes are kept as given so
// taggers can introduce new languages.
func NormalizeLanguage(lang Language) Language {
	return Language(lang.Code())
}
