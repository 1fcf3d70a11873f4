package domain

import "strings"

// DefaultLanguage is used when a request names no output language.
const DefaultLanguage = "en"

// Language is an output language offered to users.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Languages returns the offered output languages in display order.
// The list is advisory: any language code is accepted by the composer.
func Languages() []Language {
	return []Language{
		{Code: "en", Name: "English"},
		{Code: "es", Name: "Español"},
		{Code: "fr", Name: "Français"},
		{Code: "de", Name: "Deutsch"},
		{Code: "it", Name: "Italiano"},
		{Code: "pt", Name: "Português"},
		{Code: "nl", Name: "Nederlands"},
		{Code: "pl", Name: "Polski"},
		{Code: "ru", Name: "Русский"},
		{Code: "ja", Name: "日本語"},
		{Code: "ko", Name: "한국어"},
		{Code: "zh", Name: "中文"},
	}
}

// NormalizeLanguage trims the code and falls back to DefaultLanguage when empty.
func NormalizeLanguage(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultLanguage
	}
	return code
}
