package domain

import (
	"errors"
	"strings"
)

var ErrIntentMissing = errors.New("intent is required")

var (
	// ResearchKeywords route an intent through the encyclopedia lookup.
	ResearchKeywords = []string{"learn", "news", "search"}

	// SecurityKeywords select the security template and schedule a
	// background resource optimisation.
	SecurityKeywords = []string{"secure", "hack", "protect"}

	// QueryStopWords are removed from a research intent, in order, to derive
	// the lookup term.
	QueryStopWords = []string{"learn", "news", "search", "about"}
)

// Intent is the caller's free-text command, already trimmed.
type Intent string

func NewIntent(raw string) Intent {
	return Intent(strings.TrimSpace(raw))
}

func (i Intent) String() string {
	return string(i)
}

func (i Intent) Lower() string {
	return strings.ToLower(string(i))
}

func (i Intent) WantsResearch() bool {
	return containsAny(i.Lower(), ResearchKeywords)
}

func (i Intent) WantsSecurity() bool {
	return containsAny(i.Lower(), SecurityKeywords)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
