package importers

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/vaultport/vaultport/internal/entities"
)

// clipperzRecord is one card from the JSON array Clipperz embeds in a
// textarea inside its HTML export.
type clipperzRecord struct {
	Label string `json:"label"`
	Data  struct {
		Notes string `json:"notes"`
	} `json:"data"`
	CurrentVersion struct {
		Fields map[string]struct {
			Label      string `json:"label"`
			Value      string `json:"value"`
			ActionType string `json:"actionType"`
			Hidden     bool   `json:"hidden"`
		} `json:"fields"`
	} `json:"currentVersion"`
}

// ClipperzHTML imports the Clipperz HTML export: a web page whose
// payload is a JSON array inside a textarea element. A missing
// textarea aborts the parse outright, since there is nothing else in
// the document worth scraping.
type ClipperzHTML struct {
	base
}

func (p *ClipperzHTML) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload := extractTextarea(data)
	if payload == "" {
		return entities.NewImportResult().Fail("missing textarea payload"), nil
	}

	var records []clipperzRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return entities.NewImportResult().Fail("invalid embedded JSON payload"), nil
	}

	b := newBuilder()
	for _, record := range records {
		c := entities.NewLoginCipher()
		c.Name = record.Label
		c.Notes = record.Data.Notes
		// map iteration order varies between runs; walk the field keys
		// sorted so repeated imports produce identical ciphers
		keys := make([]string, 0, len(record.CurrentVersion.Fields))
		for k := range record.CurrentVersion.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			f := record.CurrentVersion.Fields[k]
			value := f.Value
			if value == "" {
				continue
			}
			switch f.ActionType {
			case "PASSWORD":
				if c.Login.Password == "" {
					c.Login.Password = value
				} else {
					processHiddenKV(c, f.Label, value)
				}
			case "URL":
				c.Login.URIs = append(c.Login.URIs, entities.LoginURI{URI: fixURI(value)})
			default:
				switch {
				case c.Login.Username == "" && isUsernameField(f.Label):
					c.Login.Username = value
				case f.Hidden:
					processHiddenKV(c, f.Label, value)
				default:
					processKV(c, f.Label, value)
				}
			}
		}
		b.addCipher(c)
	}
	return p.finish(b), nil
}

// extractTextarea pulls the contents of the first textarea element out
// of the markup. The export is not well-formed XML as a whole, so the
// document is scanned for the element rather than parsed entirely.
func extractTextarea(data string) string {
	lower := strings.ToLower(data)
	start := strings.Index(lower, "<textarea")
	if start == -1 {
		return ""
	}
	open := strings.Index(lower[start:], ">")
	if open == -1 {
		return ""
	}
	rest := data[start+open+1:]
	end := strings.Index(strings.ToLower(rest), "</textarea>")
	if end == -1 {
		return ""
	}
	return strings.TrimSpace(unescapeHTML(rest[:end]))
}

func unescapeHTML(s string) string {
	replacer := strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&amp;", "&",
	)
	return replacer.Replace(s)
}

var _ Importer = (*ClipperzHTML)(nil)
