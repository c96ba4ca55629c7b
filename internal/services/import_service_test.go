package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultport/vaultport/internal/api"
	"github.com/vaultport/vaultport/internal/entities"
	"github.com/vaultport/vaultport/internal/importers"
)

// fakeEncrypter tags names instead of encrypting so tests can check
// ordering without key material.
type fakeEncrypter struct {
	cipherErr error
}

func (f *fakeEncrypter) EncryptCipher(c *entities.Cipher) (api.CipherRequest, error) {
	if f.cipherErr != nil {
		return api.CipherRequest{}, f.cipherErr
	}
	return api.CipherRequest{Type: c.Type, Name: "enc:" + c.Name, Favorite: c.Favorite}, nil
}

func (f *fakeEncrypter) EncryptFolder(folder entities.Folder) (api.FolderRequest, error) {
	return api.FolderRequest{Name: "enc:" + folder.Name}, nil
}

func (f *fakeEncrypter) EncryptCollection(col entities.Collection) (api.CollectionRequest, error) {
	return api.CollectionRequest{Name: "enc:" + col.Name}, nil
}

type fakeUploader struct {
	err error

	personal     *api.ImportCiphersRequest
	organization *api.ImportOrganizationCiphersRequest
	orgID        string
}

func (f *fakeUploader) ImportCiphers(ctx context.Context, req *api.ImportCiphersRequest) error {
	f.personal = req
	return f.err
}

func (f *fakeUploader) ImportOrganizationCiphers(ctx context.Context, orgID string, req *api.ImportOrganizationCiphersRequest) error {
	f.orgID = orgID
	f.organization = req
	return f.err
}

type historyEntry struct {
	format  string
	orgID   string
	ciphers int
	err     error
}

type fakeHistory struct {
	entries []historyEntry
}

func (f *fakeHistory) LogImport(format, organizationID string, ciphers, folders, collections int, importErr error) {
	f.entries = append(f.entries, historyEntry{format: format, orgID: organizationID, ciphers: ciphers, err: importErr})
}

const serviceExport = `name,url,username,password,note
GitHub,https://github.com,octocat,hunter2,
Mail,https://mail.example.com,me,pw,
`

func TestImportService(t *testing.T) {
	newService := func(uploader *fakeUploader, history *fakeHistory) *ImportService {
		// Avoid wrapping a nil *fakeHistory in a non-nil interface value.
		var recorder HistoryRecorder
		if history != nil {
			recorder = history
		}
		return NewImportService(&fakeEncrypter{}, uploader, recorder, nil)
	}

	t.Run("PersonalImport", func(t *testing.T) {
		uploader := &fakeUploader{}
		history := &fakeHistory{}
		service := newService(uploader, history)

		summary, err := service.Import(context.Background(), ImportRequest{
			Format: "chromecsv",
			Data:   serviceExport,
		})
		require.NoError(t, err)
		assert.Equal(t, &ImportSummary{Ciphers: 2}, summary)

		require.NotNil(t, uploader.personal)
		require.Len(t, uploader.personal.Ciphers, 2)
		assert.Equal(t, "enc:GitHub", uploader.personal.Ciphers[0].Name)
		assert.Equal(t, "enc:Mail", uploader.personal.Ciphers[1].Name)

		require.Len(t, history.entries, 1)
		assert.Equal(t, "chromecsv", history.entries[0].format)
		assert.Equal(t, 2, history.entries[0].ciphers)
		assert.NoError(t, history.entries[0].err)
	})

	t.Run("OrganizationImport", func(t *testing.T) {
		uploader := &fakeUploader{}
		service := newService(uploader, nil)

		lastPass := "url,username,password,totp,extra,name,grouping,fav\n" +
			"https://a.example,u,p,,,A,Shared,0\n"
		summary, err := service.Import(context.Background(), ImportRequest{
			Format:         "lastpasscsv",
			Data:           lastPass,
			OrganizationID: "org-1",
		})
		require.NoError(t, err)
		assert.Equal(t, &ImportSummary{Ciphers: 1, Collections: 1}, summary)

		require.NotNil(t, uploader.organization)
		assert.Equal(t, "org-1", uploader.orgID)
		require.Len(t, uploader.organization.Collections, 1)
		assert.Equal(t, "enc:Shared", uploader.organization.Collections[0].Name)
		assert.Equal(t, "org-1", uploader.organization.Ciphers[0].OrganizationID)
		assert.Equal(t, []api.KVPair{{Key: 0, Value: 0}}, uploader.organization.CollectionRelationships)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		service := newService(&fakeUploader{}, nil)

		_, err := service.Import(context.Background(), ImportRequest{Format: "floppydisk", Data: "x"})
		assert.ErrorIs(t, err, importers.ErrUnknownFormat)
	})

	t.Run("ParseFailureBecomesImportError", func(t *testing.T) {
		history := &fakeHistory{}
		service := newService(&fakeUploader{}, history)

		_, err := service.Import(context.Background(), ImportRequest{
			Format: "chromecsv",
			Data:   "name,url,username,password\n",
		})

		var importErr *ImportError
		require.ErrorAs(t, err, &importErr)
		assert.False(t, importErr.MissingPassword)

		// Failures are recorded too.
		require.Len(t, history.entries, 1)
		assert.Error(t, history.entries[0].err)
		assert.Equal(t, 0, history.entries[0].ciphers)
	})

	t.Run("MissingPasswordSurfaces", func(t *testing.T) {
		service := newService(&fakeUploader{}, nil)

		_, err := service.Import(context.Background(), ImportRequest{
			Format: "vaultportjson",
			Data:   `{"encrypted": true, "items": [{}]}`,
		})

		var importErr *ImportError
		require.ErrorAs(t, err, &importErr)
		assert.True(t, importErr.MissingPassword)
	})

	t.Run("ValidationErrorIsRemapped", func(t *testing.T) {
		uploader := &fakeUploader{err: &api.ValidationError{
			Message: "The model state is invalid.",
			Errors:  map[string][]string{"Ciphers[0].Name": {"too long"}},
		}}
		service := newService(uploader, nil)

		_, err := service.Import(context.Background(), ImportRequest{
			Format: "chromecsv",
			Data:   serviceExport,
		})

		var importErr *ImportError
		require.ErrorAs(t, err, &importErr)
		assert.Equal(t, "[1] [Login] \"GitHub\": too long", importErr.Message)
	})

	t.Run("ServerErrorPassesThrough", func(t *testing.T) {
		uploader := &fakeUploader{err: &api.ServerError{StatusCode: 500}}
		service := newService(uploader, nil)

		_, err := service.Import(context.Background(), ImportRequest{
			Format: "chromecsv",
			Data:   serviceExport,
		})

		var serverErr *api.ServerError
		assert.ErrorAs(t, err, &serverErr)
		var importErr *ImportError
		assert.False(t, errors.As(err, &importErr))
	})

	t.Run("EncryptionFailureAborts", func(t *testing.T) {
		uploader := &fakeUploader{}
		service := NewImportService(&fakeEncrypter{cipherErr: errors.New("no key")}, uploader, nil, nil)

		_, err := service.Import(context.Background(), ImportRequest{
			Format: "chromecsv",
			Data:   serviceExport,
		})
		require.Error(t, err)
		assert.Nil(t, uploader.personal, "nothing must be uploaded after an encryption failure")
	})
}
