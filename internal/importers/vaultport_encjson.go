package importers

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/vaultport/vaultport/internal/crypto"
	"github.com/vaultport/vaultport/internal/entities"
)

// vaultportEncryptedExport is the password-protected container wrapped
// around a regular JSON export. Data is base64(nonce || ciphertext)
// under a PBKDF2-derived key.
type vaultportEncryptedExport struct {
	Encrypted         bool   `json:"encrypted"`
	PasswordProtected bool   `json:"passwordProtected"`
	Salt              string `json:"salt"`
	KDFIterations     int    `json:"kdfIterations"`
	Data              string `json:"data"`
}

// VaultportEncryptedJSON opens our password-protected JSON export and
// delegates the decrypted payload to VaultportJSON. The passphrase is
// supplied at parser selection time.
type VaultportEncryptedJSON struct {
	base
	password string
}

func (p *VaultportEncryptedJSON) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var container vaultportEncryptedExport
	if err := json.Unmarshal([]byte(data), &container); err != nil {
		return entities.NewImportResult().Fail("invalid JSON export"), nil
	}
	if !container.Encrypted || !container.PasswordProtected || container.Data == "" {
		return entities.NewImportResult().Fail("missing encrypted payload"), nil
	}
	if p.password == "" {
		return missingPasswordResult("a password is required to open this export"), nil
	}

	salt, err := base64.StdEncoding.DecodeString(container.Salt)
	if err != nil {
		return entities.NewImportResult().Fail("malformed container salt"), nil
	}
	enc, err := crypto.NewEncryptorFromPassword(p.password, salt, container.KDFIterations)
	if err != nil {
		return entities.NewImportResult().Fail("unable to derive container key"), nil
	}
	payload, err := enc.Decrypt(container.Data)
	if err != nil {
		// Wrong password and tampering are indistinguishable here;
		// re-prompting is the useful reaction either way.
		return missingPasswordResult("the password did not match this export"), nil
	}

	inner := &VaultportJSON{}
	inner.SetOrganization(p.organization)
	inner.setLogger(p.logger())
	return inner.Parse(ctx, payload)
}

func missingPasswordResult(message string) *entities.ImportResult {
	result := entities.NewImportResult().Fail(message)
	result.MissingPassword = true
	return result
}

var _ Importer = (*VaultportEncryptedJSON)(nil)
