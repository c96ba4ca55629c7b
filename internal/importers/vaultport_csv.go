package importers

import (
	"context"
	"strings"

	"github.com/vaultport/vaultport/internal/entities"
)

// VaultportCSV re-imports our own CSV export:
// folder,favorite,type,name,notes,fields,login_uri,login_username,
// login_password,login_totp. The fields column holds "name: value"
// lines separated by newlines.
type VaultportCSV struct {
	base
}

func (p *VaultportCSV) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := p.readHeaderRows(data)
	if rows == nil {
		return entities.NewImportResult().Fail("missing data rows"), nil
	}

	b := newBuilder()
	for _, row := range rows {
		var c *entities.Cipher
		switch row.Get("type") {
		case "note":
			c = entities.NewSecureNoteCipher()
		default:
			c = entities.NewLoginCipher()
			c.Login.Username = row.Get("login_username")
			c.Login.Password = row.Get("login_password")
			c.Login.TOTP = row.Get("login_totp")
			c.Login.URIs = makeURIs(strings.Split(row.Get("login_uri"), ",")...)
		}
		c.Name = row.Get("name")
		c.Notes = row.Get("notes")
		c.Favorite = row.Get("favorite") == "1" || strings.EqualFold(row.Get("favorite"), "true")

		for _, line := range strings.Split(row.Get("fields"), "\n") {
			if key, value, found := strings.Cut(line, ": "); found {
				processKV(c, key, value)
			}
		}

		idx := b.addCipher(c)
		b.addToFolder(idx, row.Get("folder"))
	}
	return p.finish(b), nil
}

var _ Importer = (*VaultportCSV)(nil)
