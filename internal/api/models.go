// Package api is the client for the vault server's bulk-import
// endpoints.
package api

import "github.com/vaultport/vaultport/internal/entities"

// CipherRequest is one encrypted record in an import batch. Name,
// Notes and Data hold ciphertext produced by the crypto collaborator;
// Data is the sealed JSON of the type-specific sub-record plus custom
// fields.
type CipherRequest struct {
	Type           entities.CipherType `json:"type"`
	Name           string              `json:"name"`
	Notes          string              `json:"notes,omitempty"`
	Favorite       bool                `json:"favorite"`
	OrganizationID string              `json:"organizationId,omitempty"`
	Data           string              `json:"data"`
}

// FolderRequest is one encrypted folder stub.
type FolderRequest struct {
	Name string `json:"name"`
}

// CollectionRequest is one encrypted collection stub.
type CollectionRequest struct {
	Name           string `json:"name"`
	OrganizationID string `json:"organizationId"`
}

// KVPair is a positional relationship on the wire: Key is the cipher
// index, Value the folder/collection index. Array positions in the
// batch match canonical indices exactly, which is what keeps these
// pairs meaningful.
type KVPair struct {
	Key   int `json:"key"`
	Value int `json:"value"`
}

// ImportCiphersRequest is the personal-vault batch shape.
type ImportCiphersRequest struct {
	Ciphers             []CipherRequest `json:"ciphers"`
	Folders             []FolderRequest `json:"folders"`
	FolderRelationships []KVPair        `json:"folderRelationships"`
}

// ImportOrganizationCiphersRequest is the organization batch shape.
type ImportOrganizationCiphersRequest struct {
	Ciphers                 []CipherRequest     `json:"ciphers"`
	Collections             []CollectionRequest `json:"collections"`
	CollectionRelationships []KVPair            `json:"collectionRelationships"`
}
