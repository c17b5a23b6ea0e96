package research

import (
	"testing"

	"github.com/hilthontt/sovereign/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDeriveQuery(t *testing.T) {
	tests := []struct {
		intent string
		want   string
	}{
		{"learn about volcanoes", "volcanoes"},
		{"Search NEWS about Black Holes", "black holes"},
		{"news   on   the  economy", "on the economy"},
		{"learn", "learn"},
		{"Learn About", "Learn About"},
		{"research quantum", "re quantum"},
	}

	for _, tt := range tests {
		t.Run(tt.intent, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveQuery(domain.NewIntent(tt.intent)))
		})
	}
}

func TestPageTitle(t *testing.T) {
	tests := map[string]string{
		"volcanoes":     "Volcanoes",
		"black holes":   "Black_Holes",
		"new york city": "New_York_City",
		"WORLD war 2":   "World_War_2",
		"9/11 attacks":  "9/11_Attacks",
		"o'neill":       "O'Neill",
		"élan vital":    "Élan_Vital",
		"":              "",
	}

	for query, want := range tests {
		t.Run(query, func(t *testing.T) {
			assert.Equal(t, want, PageTitle(query))
		})
	}
}
