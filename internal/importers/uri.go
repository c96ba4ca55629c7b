package importers

import (
	"strings"

	"github.com/vaultport/vaultport/internal/entities"
)

// maxURILength is the storage ceiling for a single login URI.
const maxURILength = 1000

// fixURI normalizes a raw URI value: trims whitespace, assumes http://
// when no scheme separator is present but the value looks like a host
// (contains a dot), and truncates to the storage ceiling. Returns ""
// for effectively-empty input; never fails.
func fixURI(raw string) string {
	uri := strings.TrimSpace(raw)
	if uri == "" {
		return ""
	}
	if !strings.Contains(uri, "://") && strings.Contains(uri, ".") {
		uri = "http://" + uri
	}
	// the ceiling is measured in characters; slicing bytes could split
	// a multi-byte rune and leave the value invalid UTF-8
	if r := []rune(uri); len(r) > maxURILength {
		uri = string(r[:maxURILength])
	}
	return uri
}

// makeURIs converts raw URI values into login URIs, dropping the ones
// that normalize to nothing.
func makeURIs(raws ...string) []entities.LoginURI {
	var uris []entities.LoginURI
	for _, raw := range raws {
		if uri := fixURI(raw); uri != "" {
			uris = append(uris, entities.LoginURI{URI: uri})
		}
	}
	return uris
}
