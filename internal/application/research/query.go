package research

import (
	"strings"
	"unicode"

	"github.com/hilthontt/sovereign/internal/domain"
)

// DeriveQuery strips the research stop words from the lowercased intent and
// collapses whitespace. When nothing is left the trimmed intent is used.
func DeriveQuery(intent domain.Intent) string {
	q := intent.Lower()
	for _, w := range domain.QueryStopWords {
		q = strings.ReplaceAll(q, w, "")
	}

	q = strings.Join(strings.Fields(q), " ")
	if q == "" {
		return intent.String()
	}
	return q
}

// PageTitle turns a query into an encyclopedia page title: spaces become
// underscores and every run of letters is capitalised ("black holes" ->
// "Black_Holes").
func PageTitle(query string) string {
	var b strings.Builder
	b.Grow(len(query))

	prevLetter := false
	for _, r := range strings.ReplaceAll(query, " ", "_") {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToTitle(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
