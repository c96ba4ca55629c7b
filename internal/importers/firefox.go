package importers

import (
	"context"
	"net/url"

	"github.com/vaultport/vaultport/internal/entities"
)

// FirefoxCSV imports the logins CSV exported by Firefox and its forks.
// The export has no name column, so the display name is derived from
// the login URL's host.
type FirefoxCSV struct {
	base
}

func (p *FirefoxCSV) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := p.readHeaderRows(data)
	if rows == nil {
		return entities.NewImportResult().Fail("missing data rows"), nil
	}

	b := newBuilder()
	for _, row := range rows {
		rawURL := row.Get("url", "hostname")
		c := entities.NewLoginCipher()
		c.Name = hostOrRaw(rawURL)
		c.Login.Username = row.Get("username")
		c.Login.Password = row.Get("password")
		c.Login.URIs = makeURIs(rawURL)
		b.addCipher(c)
	}
	return p.finish(b), nil
}

func hostOrRaw(raw string) string {
	if u, err := url.Parse(fixURI(raw)); err == nil && u.Host != "" {
		return u.Host
	}
	return raw
}

var _ Importer = (*FirefoxCSV)(nil)
