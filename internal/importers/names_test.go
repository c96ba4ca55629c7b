package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		first  string
		middle string
		last   string
	}{
		{"Empty", "", "", "", ""},
		{"WhitespaceOnly", "   ", "", "", ""},
		{"SingleToken", "Madonna", "Madonna", "", ""},
		{"TwoTokens", "Ada Lovelace", "Ada", "", "Lovelace"},
		{"ThreeTokens", "Grace Brewster Hopper", "Grace", "Brewster", "Hopper"},
		{"FourTokens", "Jean Michel van Damme", "Jean", "Michel", "van Damme"},
		{"ExtraWhitespace", "  Ada   Lovelace  ", "Ada", "", "Lovelace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, middle, last := splitFullName(tt.input)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.middle, middle)
			assert.Equal(t, tt.last, last)
		})
	}
}
