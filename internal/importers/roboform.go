package importers

import (
	"context"
	"strings"

	"github.com/vaultport/vaultport/internal/entities"
)

// RoboFormCSV imports the RoboForm CSV export:
// Name,Url,MatchUrl,Login,Pwd,Note,Folder,RfFieldsV2... The RfFieldsV2
// columns carry saved form fields as "name,id,kind,type,value" tuples.
type RoboFormCSV struct {
	base
}

func (p *RoboFormCSV) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := p.readRows(data)
	if records == nil || len(records) < 2 {
		return entities.NewImportResult().Fail("missing data rows"), nil
	}

	header := records[0]
	col := make(map[string]int, len(header))
	for i, h := range header {
		// RfFieldsV2 repeats; only the first index matters for the
		// fixed columns
		key := strings.ToLower(strings.TrimSpace(h))
		if _, ok := col[key]; !ok {
			col[key] = i
		}
	}

	at := func(record []string, name string) string {
		if idx, ok := col[name]; ok && idx < len(record) {
			return strings.TrimSpace(record[idx])
		}
		return ""
	}

	b := newBuilder()
	for _, record := range records[1:] {
		c := entities.NewLoginCipher()
		c.Name = at(record, "name")
		c.Notes = at(record, "note")
		c.Login.Username = at(record, "login")
		c.Login.Password = at(record, "pwd")
		c.Login.URIs = makeURIs(at(record, "url"))
		if match := fixURI(at(record, "matchurl")); match != "" && len(c.Login.URIs) > 0 && match != c.Login.URIs[0].URI {
			c.Login.URIs = append(c.Login.URIs, entities.LoginURI{URI: match})
		}

		if start, ok := col["rffieldsv2"]; ok {
			for _, cell := range record[start:] {
				applyRoboFormField(c, cell)
			}
		}

		idx := b.addCipher(c)
		folder := strings.Trim(strings.ReplaceAll(at(record, "folder"), "\\", "/"), "/")
		b.addToFolder(idx, folder)
	}
	return p.finish(b), nil
}

// applyRoboFormField unpacks one "name,id,kind,type,value" form-field
// tuple. Password-kind fields stay hidden.
func applyRoboFormField(c *entities.Cipher, cell string) {
	parts := strings.SplitN(cell, ",", 5)
	if len(parts) < 5 {
		return
	}
	name, kind, value := parts[0], parts[3], parts[4]
	if name == "" || value == "" {
		return
	}
	if kind == "pwd" {
		processHiddenKV(c, name, value)
		return
	}
	processKV(c, name, value)
}

var _ Importer = (*RoboFormCSV)(nil)
