package importers

import (
	"context"

	"github.com/vaultport/vaultport/internal/entities"
)

// ChromiumCSV imports the password CSV exported by Chromium-based
// browsers. Chrome, Brave, Edge, Opera and Vivaldi all share this
// shape: name,url,username,password plus an optional note column in
// newer builds.
type ChromiumCSV struct {
	base
}

func (p *ChromiumCSV) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
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
		c.Name = row.Get("name")
		c.Notes = row.Get("note")
		c.Login.Username = row.Get("username")
		c.Login.Password = row.Get("password")
		c.Login.URIs = makeURIs(row.Get("url"))
		b.addCipher(c)
	}
	return p.finish(b), nil
}

var _ Importer = (*ChromiumCSV)(nil)
