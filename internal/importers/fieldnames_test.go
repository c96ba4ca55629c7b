package importers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldNameClassifiers(t *testing.T) {
	t.Run("Password", func(t *testing.T) {
		assert.True(t, isPasswordField("Password"))
		assert.True(t, isPasswordField("  PIN "))
		assert.True(t, isPasswordField("Passwort"))
		assert.True(t, isPasswordField("mot de passe"))
		assert.False(t, isPasswordField("password hint"), "exact match only, no substrings")
		assert.False(t, isPasswordField(""))
	})

	t.Run("Username", func(t *testing.T) {
		assert.True(t, isUsernameField("Username"))
		assert.True(t, isUsernameField("E-Mail"))
		assert.True(t, isUsernameField("benutzername"))
		assert.False(t, isUsernameField("usernames"))
	})

	t.Run("URI", func(t *testing.T) {
		assert.True(t, isURIField("URL"))
		assert.True(t, isURIField("Website"))
		assert.True(t, isURIField("webseite"))
		assert.False(t, isURIField("url shortener"))
	})
}
