package database

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func insertRecord(t *testing.T, db *Database, createdAt time.Time, status ImportStatus) {
	t.Helper()
	require.NoError(t, db.DB.Create(&ImportRecord{
		ID:        uuid.NewString(),
		Format:    "chromecsv",
		Status:    status,
		CreatedAt: createdAt,
	}).Error)
}

func TestImportHistoryLogImport(t *testing.T) {
	db := setupTestDB(t)
	history := NewImportHistory(db.DB, nil)

	t.Run("RecordsSuccess", func(t *testing.T) {
		history.LogImport("lastpasscsv", "", 10, 2, 0, nil)

		assert.Eventually(t, func() bool {
			var count int64
			db.DB.Model(&ImportRecord{}).Where("format = ?", "lastpasscsv").Count(&count)
			return count == 1
		}, 2*time.Second, 10*time.Millisecond)

		var record ImportRecord
		require.NoError(t, db.DB.Where("format = ?", "lastpasscsv").First(&record).Error)
		assert.Equal(t, ImportStatusSuccess, record.Status)
		assert.Equal(t, 10, record.CipherCount)
		assert.Equal(t, 2, record.FolderCount)
		assert.Empty(t, record.ErrorMsg)
	})

	t.Run("RecordsFailureWithTruncatedMessage", func(t *testing.T) {
		history.LogImport("keepass2xml", "org-1", 0, 0, 0, errors.New(strings.Repeat("e", 600)))

		assert.Eventually(t, func() bool {
			var count int64
			db.DB.Model(&ImportRecord{}).Where("format = ?", "keepass2xml").Count(&count)
			return count == 1
		}, 2*time.Second, 10*time.Millisecond)

		var record ImportRecord
		require.NoError(t, db.DB.Where("format = ?", "keepass2xml").First(&record).Error)
		assert.Equal(t, ImportStatusFailed, record.Status)
		assert.Equal(t, "org-1", record.OrganizationID)
		assert.Len(t, record.ErrorMsg, 500)
	})
}

func TestImportHistoryList(t *testing.T) {
	db := setupTestDB(t)
	history := NewImportHistory(db.DB, nil)

	now := time.Now()
	for i := 0; i < 5; i++ {
		insertRecord(t, db, now.Add(-time.Duration(i)*time.Hour), ImportStatusSuccess)
	}

	t.Run("NewestFirst", func(t *testing.T) {
		records, total, err := history.List(0, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		require.Len(t, records, 5)
		for i := 1; i < len(records); i++ {
			assert.False(t, records[i].CreatedAt.After(records[i-1].CreatedAt))
		}
	})

	t.Run("LimitAndOffset", func(t *testing.T) {
		records, total, err := history.List(2, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 5, total)
		assert.Len(t, records, 2)
	})
}

func TestImportHistoryPurgeOlderThan(t *testing.T) {
	db := setupTestDB(t)
	history := NewImportHistory(db.DB, nil)

	now := time.Now()
	insertRecord(t, db, now, ImportStatusSuccess)
	insertRecord(t, db, now.AddDate(0, 0, -10), ImportStatusFailed)
	insertRecord(t, db, now.AddDate(0, 0, -40), ImportStatusSuccess)

	t.Run("RemovesOnlyExpiredRows", func(t *testing.T) {
		purged, err := history.PurgeOlderThan(30)
		require.NoError(t, err)
		assert.EqualValues(t, 1, purged)

		_, total, err := history.List(0, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})

	t.Run("ZeroRetentionIsNoop", func(t *testing.T) {
		purged, err := history.PurgeOlderThan(0)
		require.NoError(t, err)
		assert.Zero(t, purged)

		_, total, err := history.List(0, 0)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})
}
