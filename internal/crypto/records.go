package crypto

import (
	"encoding/json"
	"fmt"

	"github.com/vaultport/vaultport/internal/api"
	"github.com/vaultport/vaultport/internal/entities"
)

// RecordEncrypter turns plaintext canonical records into the encrypted
// wire shapes, one record per call. The type tag and favorite flag stay
// readable; names, notes and the type-specific payload are sealed.
type RecordEncrypter struct {
	enc *Encryptor
}

func NewRecordEncrypter(enc *Encryptor) *RecordEncrypter {
	return &RecordEncrypter{enc: enc}
}

// cipherPayload is the sealed portion of a cipher: the variant data
// plus custom fields, marshaled before encryption.
type cipherPayload struct {
	Login      *entities.Login      `json:"login,omitempty"`
	Card       *entities.Card       `json:"card,omitempty"`
	Identity   *entities.Identity   `json:"identity,omitempty"`
	SecureNote *entities.SecureNote `json:"secureNote,omitempty"`
	Fields     []entities.Field     `json:"fields,omitempty"`
}

// EncryptCipher seals one cipher into its wire shape.
func (r *RecordEncrypter) EncryptCipher(c *entities.Cipher) (api.CipherRequest, error) {
	name, err := r.enc.Encrypt(c.Name)
	if err != nil {
		return api.CipherRequest{}, fmt.Errorf("encrypt name: %w", err)
	}
	notes, err := r.enc.Encrypt(c.Notes)
	if err != nil {
		return api.CipherRequest{}, fmt.Errorf("encrypt notes: %w", err)
	}

	payload, err := json.Marshal(cipherPayload{
		Login:      c.Login,
		Card:       c.Card,
		Identity:   c.Identity,
		SecureNote: c.SecureNote,
		Fields:     c.Fields,
	})
	if err != nil {
		return api.CipherRequest{}, fmt.Errorf("marshal payload: %w", err)
	}
	data, err := r.enc.Encrypt(string(payload))
	if err != nil {
		return api.CipherRequest{}, fmt.Errorf("encrypt payload: %w", err)
	}

	return api.CipherRequest{
		Type:     c.Type,
		Name:     name,
		Notes:    notes,
		Favorite: c.Favorite,
		Data:     data,
	}, nil
}

// EncryptFolder seals one folder stub.
func (r *RecordEncrypter) EncryptFolder(f entities.Folder) (api.FolderRequest, error) {
	name, err := r.enc.Encrypt(f.Name)
	if err != nil {
		return api.FolderRequest{}, fmt.Errorf("encrypt folder name: %w", err)
	}
	return api.FolderRequest{Name: name}, nil
}

// EncryptCollection seals one collection stub.
func (r *RecordEncrypter) EncryptCollection(col entities.Collection) (api.CollectionRequest, error) {
	name, err := r.enc.Encrypt(col.Name)
	if err != nil {
		return api.CollectionRequest{}, fmt.Errorf("encrypt collection name: %w", err)
	}
	return api.CollectionRequest{Name: name}, nil
}
