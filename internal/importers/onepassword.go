package importers

import (
	"context"
	"strings"

	"encoding/json"

	"github.com/vaultport/vaultport/internal/entities"
)

// onePifRecord is one line of a 1Password 1PIF export: JSON objects
// separated by "***...***" marker lines.
type onePifRecord struct {
	TypeName        string `json:"typeName"`
	Title           string `json:"title"`
	Location        string `json:"location"`
	Trashed         bool   `json:"trashed"`
	OpenContents    struct {
		FaveIndex int `json:"faveIndex"`
	} `json:"openContents"`
	SecureContents struct {
		NotesPlain string `json:"notesPlain"`
		Password   string `json:"password"`
		Fields     []struct {
			Name        string `json:"name"`
			Value       string `json:"value"`
			Designation string `json:"designation"`
			Type        string `json:"type"`
		} `json:"fields"`
		Sections []struct {
			Title  string `json:"title"`
			Fields []struct {
				Title string `json:"t"`
				Value any    `json:"v"`
				Kind  string `json:"k"`
			} `json:"fields"`
		} `json:"sections"`
	} `json:"secureContents"`
}

// OnePassword1PIF imports the 1Password Interchange Format: one JSON
// object per line with "***"-prefixed separator lines between records.
type OnePassword1PIF struct {
	base
}

func (p *OnePassword1PIF) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := newBuilder()
	seen := false
	for _, line := range strings.Split(normalizeNewlines(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "***") {
			continue
		}
		var record onePifRecord
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			p.logger().Warn("skipping malformed 1PIF record")
			continue
		}
		seen = true
		if record.Trashed {
			continue
		}
		b.addCipher(convert1PifRecord(record))
	}
	if !seen {
		return entities.NewImportResult().Fail("no 1PIF records found"), nil
	}
	return p.finish(b), nil
}

func convert1PifRecord(record onePifRecord) *entities.Cipher {
	c := entities.NewLoginCipher()
	c.Name = record.Title
	c.Notes = record.SecureContents.NotesPlain
	c.Favorite = record.OpenContents.FaveIndex > 0
	c.Login.Password = record.SecureContents.Password
	c.Login.URIs = makeURIs(record.Location)

	for _, f := range record.SecureContents.Fields {
		switch f.Designation {
		case "username":
			c.Login.Username = f.Value
		case "password":
			if c.Login.Password == "" {
				c.Login.Password = f.Value
			}
		default:
			if f.Type == "P" {
				processHiddenKV(c, f.Name, f.Value)
			} else {
				processKV(c, f.Name, f.Value)
			}
		}
	}

	for _, section := range record.SecureContents.Sections {
		for _, f := range section.Fields {
			value, ok := f.Value.(string)
			if !ok || value == "" {
				continue
			}
			switch {
			case f.Kind == "concealed":
				processHiddenKV(c, f.Title, value)
			case strings.EqualFold(f.Title, "one-time password"):
				c.Login.TOTP = value
			default:
				processKV(c, f.Title, value)
			}
		}
	}
	return c
}

var _ Importer = (*OnePassword1PIF)(nil)
