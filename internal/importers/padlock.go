package importers

import (
	"context"
	"strings"

	"github.com/vaultport/vaultport/internal/entities"
)

// PadlockCSV imports the Padlock CSV export. Beyond the fixed name and
// category columns every header is a user-defined field label, so the
// shared classifiers decide what becomes the username, password or URL.
type PadlockCSV struct {
	base
}

func (p *PadlockCSV) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := p.readRows(data)
	if records == nil || len(records) < 2 {
		return entities.NewImportResult().Fail("missing data rows"), nil
	}

	header := records[0]
	b := newBuilder()
	for _, record := range records[1:] {
		c := entities.NewLoginCipher()
		var folder string

		for i, label := range header {
			if i >= len(record) || record[i] == "" {
				continue
			}
			value := record[i]
			switch {
			case strings.EqualFold(label, "name"):
				c.Name = value
			case strings.EqualFold(label, "category"), strings.EqualFold(label, "tags"):
				folder = value
			case c.Login.Username == "" && isUsernameField(label):
				c.Login.Username = value
			case c.Login.Password == "" && isPasswordField(label):
				c.Login.Password = value
			case len(c.Login.URIs) == 0 && isURIField(label):
				c.Login.URIs = makeURIs(value)
			default:
				processKV(c, label, value)
			}
		}

		idx := b.addCipher(c)
		b.addToFolder(idx, folder)
	}
	return p.finish(b), nil
}

var _ Importer = (*PadlockCSV)(nil)
