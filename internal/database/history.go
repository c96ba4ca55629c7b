package database

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ImportStatus string

const (
	ImportStatusSuccess ImportStatus = "success"
	ImportStatusFailed  ImportStatus = "failed"
)

// ImportRecord is one import attempt: what format was tried, how much
// it shipped and how it ended.
type ImportRecord struct {
	ID              string       `gorm:"primaryKey;size:36" json:"id"`
	Format          string       `gorm:"index;size:50" json:"format"`
	OrganizationID  string       `gorm:"size:36" json:"organization_id,omitempty"`
	CipherCount     int          `json:"cipher_count"`
	FolderCount     int          `json:"folder_count"`
	CollectionCount int          `json:"collection_count"`
	Status          ImportStatus `gorm:"size:20" json:"status"`
	ErrorMsg        string       `gorm:"size:500" json:"error_msg,omitempty"`
	CreatedAt       time.Time    `gorm:"index" json:"created_at"`
}

func (ImportRecord) TableName() string {
	return "import_records"
}

// ImportHistory records and queries import attempts.
type ImportHistory struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewImportHistory(db *gorm.DB, log *zap.Logger) *ImportHistory {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImportHistory{db: db, log: log}
}

// LogImport records an import attempt in the background; history
// bookkeeping never blocks or fails the import itself.
func (h *ImportHistory) LogImport(format, organizationID string, ciphers, folders, collections int, importErr error) {
	record := &ImportRecord{
		ID:              uuid.NewString(),
		Format:          format,
		OrganizationID:  organizationID,
		CipherCount:     ciphers,
		FolderCount:     folders,
		CollectionCount: collections,
		Status:          ImportStatusSuccess,
		CreatedAt:       time.Now(),
	}
	if importErr != nil {
		record.Status = ImportStatusFailed
		record.ErrorMsg = truncate(importErr.Error(), 500)
	}

	go func() {
		if err := h.db.Create(record).Error; err != nil {
			h.log.Warn("failed to record import attempt", zap.Error(err))
		}
	}()
}

// List returns recent import attempts, newest first.
func (h *ImportHistory) List(limit, offset int) ([]ImportRecord, int64, error) {
	var records []ImportRecord
	var total int64

	query := h.db.Model(&ImportRecord{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&records).Error
	return records, total, err
}

// PurgeOlderThan removes attempts older than the retention window and
// returns how many rows went away.
func (h *ImportHistory) PurgeOlderThan(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := h.db.Where("created_at < ?", cutoff).Delete(&ImportRecord{})
	return result.RowsAffected, result.Error
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
