package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language identifies a supported UI language.
type Language string

const (
	English Language = "english"
	Spanish Language = "spanish"
)

// Default is used when nothing else selects a language.
const Default = English

// Supported lists the languages in the order the selector shows them.
var Supported = []Language{English, Spanish}

var (
	tags    = []language.Tag{language.English, language.Spanish}
	matcher = language.NewMatcher(tags)
)

// Name is the English name of the language, used to direct the model.
func (l Language) Name() string {
	switch l {
	case Spanish:
		return "Spanish"
	default:
		return "English"
	}
}

// DisplayName is the label shown in the language selector.
func (l Language) DisplayName() string {
	switch l {
	case Spanish:
		return "Español 🇪🇸"
	default:
		return "English 🇺🇸"
	}
}

// Code is the short form used in query strings and cookies.
func (l Language) Code() string {
	switch l {
	case Spanish:
		return "es"
	default:
		return "en"
	}
}

// Parse accepts a language code, internal name or BCP 47 tag.
func Parse(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return "", false
	case string(English), "en":
		return English, true
	case string(Spanish), "es", "español", "espanol":
		return Spanish, true
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	switch base.String() {
	case "en":
		return English, true
	case "es":
		return Spanish, true
	}
	return "", false
}

// Negotiate picks the best supported language for an Accept-Language header.
func Negotiate(acceptLanguage string) Language {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(prefs...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}
