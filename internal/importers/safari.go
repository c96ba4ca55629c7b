package importers

import (
	"context"

	"github.com/vaultport/vaultport/internal/entities"
)

// SafariCSV imports the passwords CSV exported by Safari and iCloud
// Keychain: Title,URL,Username,Password,Notes,OTPAuth.
type SafariCSV struct {
	base
}

func (p *SafariCSV) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := p.readHeaderRows(data)
	if rows == nil {
		return entities.NewImportResult().Fail("missing data rows"), nil
	}

	b := newBuilder()
	for _, row := range rows {
		c := entities.NewLoginCipher()
		c.Name = row.Get("title")
		if c.Name == "" {
			c.Name = hostOrRaw(row.Get("url"))
		}
		c.Notes = row.Get("notes")
		c.Login.Username = row.Get("username")
		c.Login.Password = row.Get("password")
		c.Login.TOTP = row.Get("otpauth")
		c.Login.URIs = makeURIs(row.Get("url"))
		b.addCipher(c)
	}
	return p.finish(b), nil
}

var _ Importer = (*SafariCSV)(nil)
