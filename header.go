package gogrid

import (
	"html"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

const (
	indexHeader   = "#"
	actionsHeader = "Actions"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// plainLabel strips markup from a caller supplied label and returns plain
// text. Escaping is left to the template layer.
func plainLabel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	return strings.TrimSpace(html.UnescapeString(labelSanitizer().Sanitize(trimmed)))
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}

// splitWords splits a CamelCase name into words. Consecutive uppercase letters
// (acronyms) are kept together: "UserID" → [User ID], "HTTPCode" → [HTTP Code].
func splitWords(s string) []string {
	runes := []rune(s)
	var (
		words []string
		b     strings.Builder
	)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 && b.Len() > 0 {
			prev := runes[i-1]
			next := rune(0)
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && unicode.IsLower(next)) {
				words = append(words, b.String())
				b.Reset()
			}
		}
		if r == '_' || unicode.IsSpace(r) {
			if b.Len() > 0 {
				words = append(words, b.String())
				b.Reset()
			}
			continue
		}
		b.WriteRune(r)
	}

	if b.Len() > 0 {
		words = append(words, b.String())
	}

	return words
}

// shortLabel drops the first word of a CamelCase field name:
// "UserFirstName" → "First Name". Single-word names are kept.
func shortLabel(field string) string {
	words := splitWords(field)
	if len(words) < 2 {
		return field
	}

	return strings.Join(words[1:], " ")
}

func buildHeader(fields []string, primaryKey string, opts rowOptions, short bool) []HeaderCell {
	header := make([]HeaderCell, 0, len(fields)+2)
	if opts.showCheckBox {
		header = append(header, HeaderCell{Label: indexHeader})
	}

	for _, field := range fields {
		if field == primaryKey {
			if opts.showPrimaryKey {
				header = append(header, HeaderCell{Field: field, Label: indexHeader})
			}
			continue
		}

		label := field
		if short {
			label = shortLabel(field)
		}
		header = append(header, HeaderCell{Field: field, Label: plainLabel(label)})
	}

	if opts.showActions {
		header = append(header, HeaderCell{Label: actionsHeader})
	}

	return header
}
