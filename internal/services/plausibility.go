package services

import (
	"fmt"

	"github.com/vaultport/vaultport/internal/entities"
)

// checkPlausibility sanity-checks a structurally successful parse
// before anything is encrypted or uploaded. An empty result means the
// file held nothing usable; beyond that, three sampled positions are
// tested with a "looks like garbage" predicate, and only a file where
// all three samples fail is treated as a format mismatch. A mostly
// well-formed file with a few bad rows passes.
func checkPlausibility(format string, result *entities.ImportResult) error {
	if len(result.Ciphers) == 0 && len(result.Folders) == 0 {
		return &ImportError{Message: "nothing to import, the file appears to be empty"}
	}
	if len(result.Ciphers) == 0 {
		return nil
	}

	first := result.Ciphers[0]
	middle := result.Ciphers[len(result.Ciphers)/2]
	last := result.Ciphers[len(result.Ciphers)-1]
	if looksLikeGarbage(first) && looksLikeGarbage(middle) && looksLikeGarbage(last) {
		return &ImportError{
			Message: fmt.Sprintf("this file does not look like a %s export, check the selected format", format),
		}
	}
	return nil
}

// looksLikeGarbage flags the signature of a parser run against the
// wrong format: a login that got neither a name nor a password out of
// its row.
func looksLikeGarbage(c *entities.Cipher) bool {
	if c.Type != entities.CipherTypeLogin {
		return false
	}
	return c.Name == entities.BlankName && (c.Login == nil || c.Login.Password == "")
}
