package services

import (
	"context"

	"github.com/vaultport/vaultport/internal/api"
	"github.com/vaultport/vaultport/internal/entities"
)

// Encrypter seals plaintext canonical records into wire shapes, one
// record per call. Implemented by crypto.RecordEncrypter.
type Encrypter interface {
	EncryptCipher(c *entities.Cipher) (api.CipherRequest, error)
	EncryptFolder(f entities.Folder) (api.FolderRequest, error)
	EncryptCollection(col entities.Collection) (api.CollectionRequest, error)
}

// Uploader ships encrypted batches to the vault server. Implemented by
// api.Client.
type Uploader interface {
	ImportCiphers(ctx context.Context, req *api.ImportCiphersRequest) error
	ImportOrganizationCiphers(ctx context.Context, orgID string, req *api.ImportOrganizationCiphersRequest) error
}

// HistoryRecorder keeps a local record of import attempts. Implemented
// by database.ImportHistory.
type HistoryRecorder interface {
	LogImport(format, organizationID string, ciphers, folders, collections int, importErr error)
}
