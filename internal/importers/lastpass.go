package importers

import (
	"context"
	"strings"

	"github.com/vaultport/vaultport/internal/entities"
)

// LastPassCSV imports the LastPass vault export:
// url,username,password,totp,extra,name,grouping,fav.
//
// Secure notes are exported as rows whose url is the literal
// "http://sn" with the note body in the extra column. Typed notes
// ("NoteType:..." headers) are expanded line by line; credit-card
// notes are promoted to card ciphers.
type LastPassCSV struct {
	base
}

const lastPassNoteURL = "http://sn"

func (p *LastPassCSV) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
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
		if row.Get("url") == lastPassNoteURL {
			c = parseLastPassNote(row)
		} else {
			c = entities.NewLoginCipher()
			c.Name = row.Get("name")
			c.Notes = row.Get("extra")
			c.Login.Username = row.Get("username")
			c.Login.Password = row.Get("password")
			c.Login.TOTP = row.Get("totp")
			c.Login.URIs = makeURIs(row.Get("url"))
		}
		c.Favorite = row.Get("fav") == "1"

		idx := b.addCipher(c)
		if group := row.Get("grouping"); group != "(none)" {
			// LastPass nests folders with backslashes
			b.addToFolder(idx, strings.ReplaceAll(group, "\\", "/"))
		}
	}
	return p.finish(b), nil
}

// parseLastPassNote expands an "http://sn" row. Untyped notes become
// plain secure notes; typed notes get their "Key:Value" lines either
// mapped onto a structured cipher (credit cards) or kept as fields.
func parseLastPassNote(row Row) *entities.Cipher {
	extra := row.Get("extra")
	if !strings.HasPrefix(extra, "NoteType:") {
		c := entities.NewSecureNoteCipher()
		c.Name = row.Get("name")
		c.Notes = extra
		return c
	}

	lines := strings.Split(normalizeNewlines(extra), "\n")
	noteType := strings.TrimPrefix(lines[0], "NoteType:")

	var c *entities.Cipher
	if strings.EqualFold(noteType, "Credit Card") {
		c = entities.NewCardCipher()
	} else {
		c = entities.NewSecureNoteCipher()
	}
	c.Name = row.Get("name")

	for _, line := range lines[1:] {
		key, value, found := strings.Cut(line, ":")
		if !found {
			appendNote(c, line)
			continue
		}
		if applyLastPassNoteField(c, key, value) {
			continue
		}
		switch strings.ToLower(key) {
		case "notes":
			appendNote(c, value)
		case "language":
			// export artifact, carries no user data
		default:
			processKV(c, key, value)
		}
	}
	if c.Card != nil && c.Card.Brand == "" {
		c.Card.Brand = cardBrand(c.Card.Number)
	}
	return c
}

func applyLastPassNoteField(c *entities.Cipher, key, value string) bool {
	if c.Card == nil {
		return false
	}
	switch strings.ToLower(key) {
	case "name on card":
		c.Card.CardholderName = value
	case "number":
		c.Card.Number = value
	case "security code":
		c.Card.Code = value
	case "expiration date":
		if !setCardExpiry(c.Card, value) {
			processKV(c, key, value)
		}
	default:
		return false
	}
	return true
}

var _ Importer = (*LastPassCSV)(nil)
