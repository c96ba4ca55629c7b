package importers

import (
	"context"
	"strings"

	"github.com/vaultport/vaultport/internal/entities"
)

// KeePass2XML imports the KeePass 2.x (and KeePassXC) XML export. The
// document nests groups arbitrarily deep; group paths become folder
// names joined with "/". Entry attributes are String elements with
// well-known keys; unknown keys become custom fields, with Protected
// values kept hidden.
type KeePass2XML struct {
	base
}

func (p *KeePass2XML) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := parseXML(data)
	if doc == nil || !strings.EqualFold(doc.XMLName.Local, "KeePassFile") {
		return entities.NewImportResult().Fail("missing KeePassFile root node"), nil
	}
	root := doc.child("Root")
	if root == nil {
		return entities.NewImportResult().Fail("missing Root node"), nil
	}

	b := newBuilder()
	for _, group := range root.children("Group") {
		p.traverseGroup(b, group, "")
	}
	return p.finish(b), nil
}

func (p *KeePass2XML) traverseGroup(b *builder, group *xmlNode, parentPath string) {
	name := group.childText("Name")
	path := parentPath
	if name != "" && !strings.EqualFold(name, "Root") {
		if path == "" {
			path = name
		} else {
			path += "/" + name
		}
	}

	for _, entry := range group.children("Entry") {
		idx := b.addCipher(parseKeePassEntry(entry))
		b.addToFolder(idx, path)
	}
	for _, sub := range group.children("Group") {
		p.traverseGroup(b, sub, path)
	}
}

func parseKeePassEntry(entry *xmlNode) *entities.Cipher {
	c := entities.NewLoginCipher()
	for _, attr := range entry.children("String") {
		key := attr.childText("Key")
		valueNode := attr.child("Value")
		if key == "" || valueNode == nil {
			continue
		}
		value := valueNode.text()

		switch key {
		case "Title":
			c.Name = value
		case "UserName":
			c.Login.Username = value
		case "Password":
			c.Login.Password = value
		case "URL":
			c.Login.URIs = makeURIs(value)
		case "Notes":
			c.Notes = value
		case "otp", "TOTP Seed":
			c.Login.TOTP = strings.TrimPrefix(value, "key=")
		default:
			if strings.EqualFold(valueNode.attr("Protected"), "True") {
				processHiddenKV(c, key, value)
			} else {
				processKV(c, key, value)
			}
		}
	}
	return c
}

var _ Importer = (*KeePass2XML)(nil)
