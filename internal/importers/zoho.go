package importers

import (
	"context"
	"strings"

	"github.com/vaultport/vaultport/internal/entities"
)

// ZohoVaultCSV imports the Zoho Vault CSV export. Credential data is
// packed into the SecretData column as "Key:value" lines; the shared
// classifiers map its free-form keys onto structured fields.
type ZohoVaultCSV struct {
	base
}

func (p *ZohoVaultCSV) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
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
		c.Name = row.Get("password name", "secret name")
		c.Notes = row.Get("notes", "description")
		c.Login.URIs = makeURIs(row.Get("password url", "secret url"))

		secretData := row.Get("secretdata", "secret data")
		for _, line := range strings.Split(normalizeNewlines(secretData), "\n") {
			key, value, found := strings.Cut(line, ":")
			if !found {
				continue
			}
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			switch {
			case c.Login.Username == "" && isUsernameField(key):
				c.Login.Username = value
			case c.Login.Password == "" && isPasswordField(key):
				c.Login.Password = value
			case len(c.Login.URIs) == 0 && isURIField(key):
				c.Login.URIs = makeURIs(value)
			default:
				processKV(c, key, value)
			}
		}
		for _, line := range strings.Split(normalizeNewlines(row.Get("customdata", "custom data")), "\n") {
			if key, value, found := strings.Cut(line, ":"); found {
				processKV(c, strings.TrimSpace(key), strings.TrimSpace(value))
			}
		}

		idx := b.addCipher(c)
		b.addToFolder(idx, strings.ReplaceAll(row.Get("chamber name", "folder name"), "\\", "/"))
	}
	return p.finish(b), nil
}

var _ Importer = (*ZohoVaultCSV)(nil)
