package importers

import (
	"context"

	"github.com/vaultport/vaultport/internal/entities"
)

// KeePassXCSV imports the KeePassX / KeePassXC CSV export:
// "Group","Title","Username","Password","URL","Notes" (newer builds
// add TOTP and timestamps).
type KeePassXCSV struct {
	base
}

func (p *KeePassXCSV) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
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
		c.Notes = row.Get("notes")
		c.Login.Username = row.Get("username")
		c.Login.Password = row.Get("password")
		c.Login.TOTP = row.Get("totp")
		c.Login.URIs = makeURIs(row.Get("url"))

		idx := b.addCipher(c)
		b.addToFolder(idx, keepassGroupPath(row.Get("group")))
	}
	return p.finish(b), nil
}

// keepassGroupPath strips the synthetic "Root" prefix KeePassXC puts in
// front of every group path.
func keepassGroupPath(group string) string {
	const rootPrefix = "Root/"
	if group == "Root" {
		return ""
	}
	if len(group) > len(rootPrefix) && group[:len(rootPrefix)] == rootPrefix {
		return group[len(rootPrefix):]
	}
	return group
}

var _ Importer = (*KeePassXCSV)(nil)
