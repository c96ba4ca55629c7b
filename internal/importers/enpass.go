package importers

import (
	"context"
	"strings"

	"github.com/vaultport/vaultport/internal/entities"
)

// EnpassCSV imports the headerless Enpass CSV: each row is the title,
// followed by label/value pairs, with a trailing note column. Labels
// are free-form, so the shared field-name classifiers decide which
// pair becomes the username, password or URL.
type EnpassCSV struct {
	base
}

func (p *EnpassCSV) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := p.readRows(data)
	if records == nil {
		return entities.NewImportResult().Fail("missing data rows"), nil
	}

	b := newBuilder()
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		c := entities.NewLoginCipher()
		c.Name = strings.TrimSpace(record[0])

		// trailing odd column is the note
		pairs := record[1:]
		if len(pairs)%2 == 1 {
			c.Notes = strings.TrimSpace(pairs[len(pairs)-1])
			pairs = pairs[:len(pairs)-1]
		}

		for i := 0; i+1 < len(pairs); i += 2 {
			label := strings.TrimSpace(pairs[i])
			value := strings.TrimSpace(pairs[i+1])
			if value == "" {
				continue
			}
			switch {
			case c.Login.Password == "" && isPasswordField(label):
				c.Login.Password = value
			case c.Login.Username == "" && isUsernameField(label):
				c.Login.Username = value
			case len(c.Login.URIs) == 0 && isURIField(label):
				c.Login.URIs = makeURIs(value)
			default:
				processKV(c, label, value)
			}
		}
		b.addCipher(c)
	}
	return p.finish(b), nil
}

var _ Importer = (*EnpassCSV)(nil)
