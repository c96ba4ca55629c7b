package importers

import (
	"context"
	"strings"

	"github.com/vaultport/vaultport/internal/entities"
)

// SafeInCloudXML imports the SafeInCloud XML export. Cards carry typed
// field children; label elements define folders, referenced from cards
// by label_id children.
type SafeInCloudXML struct {
	base
}

func (p *SafeInCloudXML) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := parseXML(data)
	if doc == nil || !strings.EqualFold(doc.XMLName.Local, "database") {
		return entities.NewImportResult().Fail("missing database root node"), nil
	}

	labels := make(map[string]string)
	for _, label := range doc.children("label") {
		labels[label.attr("id")] = label.attr("name")
	}

	b := newBuilder()
	for _, card := range doc.children("card") {
		if strings.EqualFold(card.attr("deleted"), "true") ||
			strings.EqualFold(card.attr("template"), "true") {
			continue
		}

		c := entities.NewLoginCipher()
		c.Name = card.attr("title")
		for _, field := range card.children("field") {
			value := field.text()
			if value == "" {
				continue
			}
			name := field.attr("name")
			switch field.attr("type") {
			case "login", "email":
				if c.Login.Username == "" {
					c.Login.Username = value
				} else {
					processKV(c, name, value)
				}
			case "password", "pin", "secret":
				if c.Login.Password == "" {
					c.Login.Password = value
				} else {
					processHiddenKV(c, name, value)
				}
			case "website":
				c.Login.URIs = append(c.Login.URIs, entities.LoginURI{URI: fixURI(value)})
			case "one_time_password":
				c.Login.TOTP = value
			default:
				processKV(c, name, value)
			}
		}
		if notes := card.child("notes"); notes != nil {
			c.Notes = notes.text()
		}

		idx := b.addCipher(c)
		for _, labelID := range card.children("label_id") {
			b.addToFolder(idx, labels[labelID.text()])
		}
	}
	return p.finish(b), nil
}

var _ Importer = (*SafeInCloudXML)(nil)
