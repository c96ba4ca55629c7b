package services

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/vaultport/vaultport/internal/api"
	"github.com/vaultport/vaultport/internal/entities"
)

// validationKeyPattern matches the server's per-item rejection keys:
// "Ciphers[3].Name", "Folders[1]", "Collections[0]".
var validationKeyPattern = regexp.MustCompile(`^(Ciphers|Folders|Collections)\[(\d+)\](\.\w+)?$`)

// remapValidationErrors translates a server-side validation failure
// back to the original human-readable source items. The server only
// knows batch positions and encrypted names; the canonical result
// still has both the same positions and the plaintext, so each key is
// resolved to "[position] [Type] "name": server complaint". Keys that
// do not match the pattern or point outside the batch are skipped.
func remapValidationErrors(result *entities.ImportResult, ve *api.ValidationError) string {
	keys := make([]string, 0, len(ve.Errors))
	for key := range ve.Errors {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var lines []string
	for _, key := range keys {
		match := validationKeyPattern.FindStringSubmatch(key)
		if match == nil {
			continue
		}
		index, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}

		kind, name := lookupEntity(result, match[1], index)
		if kind == "" {
			continue
		}
		for _, message := range ve.Errors[key] {
			lines = append(lines, fmt.Sprintf("[%d] [%s] %q: %s", index+1, kind, name, message))
		}
	}

	if len(lines) == 0 {
		return ve.Message
	}
	return strings.Join(lines, "\n")
}

func lookupEntity(result *entities.ImportResult, kind string, index int) (string, string) {
	switch kind {
	case "Ciphers":
		if index < 0 || index >= len(result.Ciphers) {
			return "", ""
		}
		c := result.Ciphers[index]
		return c.Type.String(), c.Name
	case "Folders":
		if index < 0 || index >= len(result.Folders) {
			return "", ""
		}
		return "Folder", result.Folders[index].Name
	case "Collections":
		if index < 0 || index >= len(result.Collections) {
			return "", ""
		}
		return "Collection", result.Collections[index].Name
	default:
		return "", ""
	}
}
