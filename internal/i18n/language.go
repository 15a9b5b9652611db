// Package i18n holds the two supported display languages and the embedded
// label catalogs used by the CLI.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language selects the display language for rule text and labels.
type Language string

// Supported languages
const (
	English Language = "en"
	French  Language = "fr"
)

// Supported lists the languages in matcher preference order.
var Supported = []Language{English, French}

var matcher = language.NewMatcher([]language.Tag{language.English, language.French})

// Parse maps any BCP 47 tag onto a supported language. French variants
// (fr-CA, fr-BE, ...) resolve to French; everything else, including blank or
// malformed input, resolves to English.
func Parse(s string) Language {
	s = strings.TrimSpace(s)
	if s == "" {
		return English
	}

	tag, err := language.Parse(s)
	if err != nil {
		return English
	}

	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return English
	}
	return Supported[idx]
}

// Tag returns the x/text language tag.
func (l Language) Tag() language.Tag {
	if l == French {
		return language.French
	}
	return language.English
}

// IsFrench reports whether French substitutions apply.
func (l Language) IsFrench() bool {
	return l == French
}

func (l Language) String() string {
	return string(l)
}
