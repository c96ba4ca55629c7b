// Package services drives the import pipeline end to end: parser
// selection, plausibility checking, encryption, batching, upload and
// failure remapping.
package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vaultport/vaultport/internal/api"
	"github.com/vaultport/vaultport/internal/entities"
	"github.com/vaultport/vaultport/internal/importers"
)

// ImportRequest carries one import invocation.
type ImportRequest struct {
	Format         string
	Data           string
	OrganizationID string
	Password       string
}

// ImportSummary reports what a successful import shipped.
type ImportSummary struct {
	Ciphers     int `json:"ciphers"`
	Folders     int `json:"folders"`
	Collections int `json:"collections"`
}

// ImportError is the single error shape this subsystem surfaces:
// structural parse failures, plausibility failures and remapped upload
// rejections all arrive here. MissingPassword tells the caller to
// re-prompt for a passphrase instead of showing the message.
type ImportError struct {
	Message         string
	MissingPassword bool
}

func (e *ImportError) Error() string {
	return e.Message
}

// ImportService owns one import invocation from raw text to uploaded
// batch. Collaborators are injected; the service holds no per-import
// state, so one instance serves concurrent imports.
type ImportService struct {
	encrypter Encrypter
	uploader  Uploader
	history   HistoryRecorder
	log       *zap.Logger
}

func NewImportService(encrypter Encrypter, uploader Uploader, history HistoryRecorder, log *zap.Logger) *ImportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImportService{
		encrypter: encrypter,
		uploader:  uploader,
		history:   history,
		log:       log,
	}
}

// Formats lists the supported format tags.
func (s *ImportService) Formats() []string {
	return importers.Formats()
}

// Import runs the whole pipeline for one file. The returned error is
// an *ImportError for user-facing failures, importers.ErrUnknownFormat
// for a bad format tag, or the context's error on cancellation.
func (s *ImportService) Import(ctx context.Context, req ImportRequest) (*ImportSummary, error) {
	parser, err := importers.For(req.Format,
		importers.WithPassword(req.Password),
		importers.WithLogger(s.log))
	if err != nil {
		return nil, err
	}
	parser.SetOrganization(req.OrganizationID)

	result, err := parser.Parse(ctx, req.Data)
	if err != nil {
		return nil, err
	}

	summary, importErr := s.process(ctx, req, result)
	if s.history != nil {
		var c, f, col int
		if summary != nil {
			c, f, col = summary.Ciphers, summary.Folders, summary.Collections
		}
		s.history.LogImport(req.Format, req.OrganizationID, c, f, col, importErr)
	}
	if importErr != nil {
		return nil, importErr
	}
	return summary, nil
}

func (s *ImportService) process(ctx context.Context, req ImportRequest, result *entities.ImportResult) (*ImportSummary, error) {
	if !result.Success {
		message := result.ErrorMessage
		if message == "" {
			message = "the file could not be parsed"
		}
		return nil, &ImportError{Message: message, MissingPassword: result.MissingPassword}
	}

	if err := checkPlausibility(req.Format, result); err != nil {
		return nil, err
	}

	s.log.Info("parsed import file",
		zap.String("format", req.Format),
		zap.Int("ciphers", len(result.Ciphers)),
		zap.Int("folders", len(result.Folders)),
		zap.Int("collections", len(result.Collections)))

	if req.OrganizationID == "" {
		return s.uploadPersonal(ctx, result)
	}
	return s.uploadOrganization(ctx, req.OrganizationID, result)
}

// uploadPersonal encrypts and ships a personal-vault batch. Encryption
// iterates the canonical arrays strictly in order and each batch slot
// matches the canonical index, which is what keeps the relationship
// pairs valid; they are copied through unchanged.
func (s *ImportService) uploadPersonal(ctx context.Context, result *entities.ImportResult) (*ImportSummary, error) {
	batch := &api.ImportCiphersRequest{}
	for _, c := range result.Ciphers {
		enc, err := s.encrypter.EncryptCipher(c)
		if err != nil {
			return nil, fmt.Errorf("encrypt cipher: %w", err)
		}
		batch.Ciphers = append(batch.Ciphers, enc)
	}
	for _, f := range result.Folders {
		enc, err := s.encrypter.EncryptFolder(f)
		if err != nil {
			return nil, fmt.Errorf("encrypt folder: %w", err)
		}
		batch.Folders = append(batch.Folders, enc)
	}
	for _, rel := range result.FolderRelationships {
		batch.FolderRelationships = append(batch.FolderRelationships,
			api.KVPair{Key: rel.Cipher, Value: rel.Container})
	}

	if err := s.uploader.ImportCiphers(ctx, batch); err != nil {
		return nil, s.translateUploadError(result, err)
	}
	return &ImportSummary{Ciphers: len(batch.Ciphers), Folders: len(batch.Folders)}, nil
}

func (s *ImportService) uploadOrganization(ctx context.Context, orgID string, result *entities.ImportResult) (*ImportSummary, error) {
	batch := &api.ImportOrganizationCiphersRequest{}
	for _, c := range result.Ciphers {
		enc, err := s.encrypter.EncryptCipher(c)
		if err != nil {
			return nil, fmt.Errorf("encrypt cipher: %w", err)
		}
		enc.OrganizationID = orgID
		batch.Ciphers = append(batch.Ciphers, enc)
	}
	for _, col := range result.Collections {
		enc, err := s.encrypter.EncryptCollection(col)
		if err != nil {
			return nil, fmt.Errorf("encrypt collection: %w", err)
		}
		enc.OrganizationID = orgID
		batch.Collections = append(batch.Collections, enc)
	}
	for _, rel := range result.CollectionRelationships {
		batch.CollectionRelationships = append(batch.CollectionRelationships,
			api.KVPair{Key: rel.Cipher, Value: rel.Container})
	}

	if err := s.uploader.ImportOrganizationCiphers(ctx, orgID, batch); err != nil {
		return nil, s.translateUploadError(result, err)
	}
	return &ImportSummary{Ciphers: len(batch.Ciphers), Collections: len(batch.Collections)}, nil
}

func (s *ImportService) translateUploadError(result *entities.ImportResult, err error) error {
	var ve *api.ValidationError
	if errors.As(err, &ve) {
		return &ImportError{Message: remapValidationErrors(result, ve)}
	}
	s.log.Error("import upload failed", zap.Error(err))
	return err
}
