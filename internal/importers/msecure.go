package importers

import (
	"context"
	"strings"

	"github.com/vaultport/vaultport/internal/entities"
)

// MSecureCSV imports the headerless mSecure CSV: group, record type,
// title, note, then "label|value" columns. Login records map their
// first three extra columns to URL, username and password; everything
// else is kept as fields on a secure note.
type MSecureCSV struct {
	base
}

func (p *MSecureCSV) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := p.readRows(data)
	if records == nil {
		return entities.NewImportResult().Fail("missing data rows"), nil
	}

	b := newBuilder()
	for _, record := range records {
		if len(record) < 3 {
			continue
		}
		group, recordType, title := record[0], record[1], record[2]

		var c *entities.Cipher
		if strings.EqualFold(recordType, "Login") || strings.EqualFold(recordType, "Web Logins") {
			c = entities.NewLoginCipher()
			extra := record[3:]
			if len(extra) > 1 {
				c.Login.URIs = makeURIs(msecureValue(extra[1]))
			}
			if len(extra) > 2 {
				c.Login.Username = msecureValue(extra[2])
			}
			if len(extra) > 3 {
				c.Login.Password = msecureValue(extra[3])
			}
			if len(extra) > 0 {
				c.Notes = msecureValue(extra[0])
			}
		} else {
			c = entities.NewSecureNoteCipher()
			if len(record) > 3 {
				c.Notes = msecureValue(record[3])
			}
			for _, col := range record[4:] {
				label, value, found := strings.Cut(col, "|")
				if !found {
					appendNote(c, col)
					continue
				}
				processKV(c, label, value)
			}
		}
		c.Name = strings.TrimSpace(title)

		idx := b.addCipher(c)
		if !strings.EqualFold(group, "Unassigned") {
			b.addToFolder(idx, group)
		}
	}
	return p.finish(b), nil
}

// msecureValue strips the "label|" prefix mSecure puts on every value
// column.
func msecureValue(col string) string {
	if _, value, found := strings.Cut(col, "|"); found {
		return strings.TrimSpace(value)
	}
	return strings.TrimSpace(col)
}

var _ Importer = (*MSecureCSV)(nil)
