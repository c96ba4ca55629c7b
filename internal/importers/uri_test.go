package importers

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixURI(t *testing.T) {
	t.Run("KeepsScheme", func(t *testing.T) {
		assert.Equal(t, "https://example.com/login", fixURI("https://example.com/login"))
	})

	t.Run("PrependsSchemeForBareHost", func(t *testing.T) {
		assert.Equal(t, "http://example.com", fixURI("example.com"))
	})

	t.Run("LeavesNonHostAlone", func(t *testing.T) {
		assert.Equal(t, "localhost", fixURI("localhost"))
	})

	t.Run("TrimsWhitespace", func(t *testing.T) {
		assert.Equal(t, "http://example.com", fixURI("  example.com  "))
	})

	t.Run("EmptyStaysEmpty", func(t *testing.T) {
		assert.Equal(t, "", fixURI("   "))
	})

	t.Run("TruncatesOverlongValues", func(t *testing.T) {
		long := "https://example.com/" + strings.Repeat("a", 2000)
		assert.Len(t, fixURI(long), maxURILength)
	})

	t.Run("TruncatesOnRuneBoundaries", func(t *testing.T) {
		long := "https://example.com/" + strings.Repeat("é", 2000)
		got := fixURI(long)

		assert.True(t, utf8.ValidString(got))
		assert.Len(t, []rune(got), maxURILength)
	})
}

func TestMakeURIs(t *testing.T) {
	uris := makeURIs("example.com", "", "https://other.net", "  ")

	require.Len(t, uris, 2)
	assert.Equal(t, "http://example.com", uris[0].URI)
	assert.Equal(t, "https://other.net", uris[1].URI)
}
