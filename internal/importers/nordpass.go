package importers

import (
	"context"
	"strings"

	"github.com/vaultport/vaultport/internal/entities"
)

// NordPassCSV imports the NordPass CSV export. The type column selects
// between login, card, identity and note shapes sharing one header:
// name,url,username,password,note,cardholdername,cardnumber,cvc,
// expirydate,zipcode,folder,full_name,phone_number,email,address1,
// address2,city,country,state,type.
type NordPassCSV struct {
	base
}

func (p *NordPassCSV) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
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
		switch strings.ToLower(row.Get("type")) {
		case "credit_card":
			c = entities.NewCardCipher()
			c.Card.CardholderName = row.Get("cardholdername")
			c.Card.Number = row.Get("cardnumber")
			c.Card.Brand = cardBrand(c.Card.Number)
			c.Card.Code = row.Get("cvc")
			if expiry := row.Get("expirydate"); expiry != "" {
				if !setCardExpiry(c.Card, expiry) {
					processKV(c, "expiry", expiry)
				}
			}
		case "identity":
			c = entities.NewIdentityCipher()
			first, middle, last := splitFullName(row.Get("full_name"))
			c.Identity.FirstName = first
			c.Identity.MiddleName = middle
			c.Identity.LastName = last
			c.Identity.Email = row.Get("email")
			c.Identity.Phone = row.Get("phone_number")
			c.Identity.Address1 = row.Get("address1")
			c.Identity.Address2 = row.Get("address2")
			c.Identity.City = row.Get("city")
			c.Identity.State = row.Get("state")
			c.Identity.PostalCode = row.Get("zipcode")
			c.Identity.Country = row.Get("country")
		case "note":
			c = entities.NewSecureNoteCipher()
		default:
			c = entities.NewLoginCipher()
			c.Login.Username = row.Get("username")
			c.Login.Password = row.Get("password")
			c.Login.URIs = makeURIs(row.Get("url"))
		}
		c.Name = row.Get("name")
		c.Notes = row.Get("note")

		idx := b.addCipher(c)
		b.addToFolder(idx, row.Get("folder"))
	}
	return p.finish(b), nil
}

var _ Importer = (*NordPassCSV)(nil)
