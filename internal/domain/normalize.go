package domain

import (
	"strings"
)

// punctuationReplacer maps typographic punctuation to its plain-ASCII form
// and the byte order mark, which strings.Fields does not split on, to a space.
var punctuationReplacer = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"–", "-",
	"—", "-",
	"…", "...",
	"\uFEFF", " ",
)

// CleanText prepares user text for embedding into a prompt:
//   - curly quotes, en/em dashes and the ellipsis character become ASCII
//   - runs of whitespace (including newlines, tabs and U+FEFF) become one space
//   - leading/trailing whitespace is trimmed
//
// Case, digits and all other characters are preserved. CleanText is idempotent.
func CleanText(text string) string {
	text = punctuationReplacer.Replace(text)
	return strings.Join(strings.Fields(text), " ")
}
