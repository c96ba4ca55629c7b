package importers

import (
	"context"

	"github.com/vaultport/vaultport/internal/entities"
)

// DashlaneCSV imports the Dashlane credentials CSV:
// username,username2,username3,title,password,note,url,category,otpSecret.
// Secondary usernames are kept as custom fields.
type DashlaneCSV struct {
	base
}

func (p *DashlaneCSV) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
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
		c.Notes = row.Get("note")
		c.Login.Username = row.Get("username")
		c.Login.Password = row.Get("password")
		c.Login.TOTP = row.Get("otpsecret", "otpurl")
		c.Login.URIs = makeURIs(row.Get("url"))
		processKV(c, "username2", row.Get("username2"))
		processKV(c, "username3", row.Get("username3"))

		idx := b.addCipher(c)
		b.addToFolder(idx, row.Get("category"))
	}
	return p.finish(b), nil
}

var _ Importer = (*DashlaneCSV)(nil)
