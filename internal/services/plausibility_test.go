package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultport/vaultport/internal/entities"
)

func garbageLogin() *entities.Cipher {
	c := entities.NewLoginCipher()
	c.Name = entities.BlankName
	return c
}

func goodLogin(name string) *entities.Cipher {
	c := entities.NewLoginCipher()
	c.Name = name
	c.Login.Password = "pw"
	return c
}

func TestCheckPlausibility(t *testing.T) {
	t.Run("EmptyResultFails", func(t *testing.T) {
		result := entities.NewImportResult()
		err := checkPlausibility("chromecsv", result)

		var importErr *ImportError
		require.ErrorAs(t, err, &importErr)
		assert.Contains(t, importErr.Message, "appears to be empty")
	})

	t.Run("FoldersOnlyPasses", func(t *testing.T) {
		result := entities.NewImportResult()
		result.Folders = []entities.Folder{{Name: "Work"}}

		assert.NoError(t, checkPlausibility("chromecsv", result))
	})

	t.Run("AllSamplesGarbageFails", func(t *testing.T) {
		result := entities.NewImportResult()
		for i := 0; i < 5; i++ {
			result.Ciphers = append(result.Ciphers, garbageLogin())
		}

		err := checkPlausibility("lastpasscsv", result)
		var importErr *ImportError
		require.ErrorAs(t, err, &importErr)
		assert.Contains(t, importErr.Message, "lastpasscsv")
		assert.False(t, importErr.MissingPassword)
	})

	t.Run("OneGoodSamplePasses", func(t *testing.T) {
		result := entities.NewImportResult()
		result.Ciphers = []*entities.Cipher{
			garbageLogin(),
			goodLogin("Mail"),
			garbageLogin(),
		}

		assert.NoError(t, checkPlausibility("chromecsv", result))
	})

	t.Run("GarbageOutsideSamplesPasses", func(t *testing.T) {
		// Only the first, middle and last ciphers are inspected.
		result := entities.NewImportResult()
		result.Ciphers = []*entities.Cipher{
			goodLogin("a"),
			garbageLogin(),
			goodLogin("b"),
			garbageLogin(),
			goodLogin("c"),
		}

		assert.NoError(t, checkPlausibility("chromecsv", result))
	})

	t.Run("NonLoginIsNeverGarbage", func(t *testing.T) {
		note := entities.NewSecureNoteCipher()
		note.Name = entities.BlankName

		result := entities.NewImportResult()
		result.Ciphers = []*entities.Cipher{note}

		assert.NoError(t, checkPlausibility("chromecsv", result))
	})
}
