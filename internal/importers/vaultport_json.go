package importers

import (
	"context"
	"encoding/json"

	"github.com/vaultport/vaultport/internal/entities"
)

// vaultportExport mirrors our own unencrypted JSON export. Item ids
// from the exporting vault are deliberately ignored: imported records
// have no identity until the server assigns one.
type vaultportExport struct {
	Encrypted bool `json:"encrypted"`
	Folders   []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"folders"`
	Collections []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"collections"`
	Items []vaultportItem `json:"items"`
}

type vaultportItem struct {
	FolderID      string              `json:"folderId"`
	CollectionIDs []string            `json:"collectionIds"`
	Type          entities.CipherType `json:"type"`
	Name          string              `json:"name"`
	Notes         string              `json:"notes"`
	Favorite      bool                `json:"favorite"`
	Fields        []struct {
		Name  string             `json:"name"`
		Value string             `json:"value"`
		Type  entities.FieldType `json:"type"`
	} `json:"fields"`
	Login *struct {
		Username string `json:"username"`
		Password string `json:"password"`
		TOTP     string `json:"totp"`
		URIs     []struct {
			URI   string             `json:"uri"`
			Match *entities.URIMatch `json:"match"`
		} `json:"uris"`
	} `json:"login"`
	Card       *entities.Card     `json:"card"`
	Identity   *entities.Identity `json:"identity"`
	SecureNote *struct {
		Type entities.SecureNoteType `json:"type"`
	} `json:"secureNote"`
}

// VaultportJSON re-imports our own unencrypted JSON export.
type VaultportJSON struct {
	base
}

func (p *VaultportJSON) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var export vaultportExport
	if err := json.Unmarshal([]byte(data), &export); err != nil {
		return entities.NewImportResult().Fail("invalid JSON export"), nil
	}
	if export.Encrypted {
		result := entities.NewImportResult().Fail("this export is password protected")
		result.MissingPassword = true
		return result, nil
	}
	if len(export.Items) == 0 {
		return entities.NewImportResult().Fail("no items found"), nil
	}

	folderNames := make(map[string]string, len(export.Folders))
	for _, f := range export.Folders {
		folderNames[f.ID] = f.Name
	}
	collectionNames := make(map[string]string, len(export.Collections))
	for _, col := range export.Collections {
		collectionNames[col.ID] = col.Name
	}

	b := newBuilder()
	for _, item := range export.Items {
		c := convertVaultportItem(item)
		idx := b.addCipher(c)
		b.addToFolder(idx, folderNames[item.FolderID])
		// organization exports group items by collection instead
		for _, id := range item.CollectionIDs {
			b.addToCollection(idx, collectionNames[id])
		}
	}
	return p.finish(b), nil
}

func convertVaultportItem(item vaultportItem) *entities.Cipher {
	c := &entities.Cipher{
		Type:     item.Type,
		Name:     item.Name,
		Notes:    item.Notes,
		Favorite: item.Favorite,
	}
	for _, f := range item.Fields {
		processKVTyped(c, f.Name, f.Value, f.Type)
	}

	switch item.Type {
	case entities.CipherTypeLogin:
		c.Login = &entities.Login{}
		if item.Login != nil {
			c.Login.Username = item.Login.Username
			c.Login.Password = item.Login.Password
			c.Login.TOTP = item.Login.TOTP
			for _, u := range item.Login.URIs {
				if uri := fixURI(u.URI); uri != "" {
					c.Login.URIs = append(c.Login.URIs, entities.LoginURI{URI: uri, Match: u.Match})
				}
			}
		}
	case entities.CipherTypeCard:
		c.Card = item.Card
		if c.Card == nil {
			c.Card = &entities.Card{}
		}
		if c.Card.Brand == "" {
			c.Card.Brand = cardBrand(c.Card.Number)
		}
	case entities.CipherTypeIdentity:
		c.Identity = item.Identity
		if c.Identity == nil {
			c.Identity = &entities.Identity{}
		}
	default:
		c.Type = entities.CipherTypeSecureNote
		c.SecureNote = &entities.SecureNote{Type: entities.SecureNoteTypeGeneric}
	}
	return c
}

var _ Importer = (*VaultportJSON)(nil)
