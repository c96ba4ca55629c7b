package importers

import (
	"context"

	"go.uber.org/zap"

	"github.com/vaultport/vaultport/internal/entities"
)

// Importer is implemented by every format-specific parser.
//
// Parse consumes the raw file contents and returns the canonical
// result. Data-shape problems are reported in-result (Success=false
// plus an explanatory message), never as a returned error; the error
// return is reserved for context cancellation.
//
// SetOrganization declares the destination organization. It must be
// called before Parse; a non-empty id makes the parser migrate folders
// to collections before returning, since folders are a personal-vault
// concept.
type Importer interface {
	Parse(ctx context.Context, data string) (*entities.ImportResult, error)
	SetOrganization(orgID string)
}

// base carries the state and helpers shared by all parsers.
type base struct {
	organization string
	log          *zap.Logger
}

func (b *base) SetOrganization(orgID string) {
	b.organization = orgID
}

func (b *base) setLogger(log *zap.Logger) {
	b.log = log
}

func (b *base) logger() *zap.Logger {
	if b.log == nil {
		b.log = zap.NewNop()
	}
	return b.log
}

// finish applies the end-of-parse steps every parser shares: when the
// destination is an organization vault, folder data is migrated to
// collections. This runs once, strictly after all per-row relationship
// recording.
func (b *base) finish(bld *builder) *entities.ImportResult {
	if b.organization != "" {
		bld.moveFoldersToCollections()
	}
	return bld.result
}

// loggable lets the registry hand the configured logger to parsers
// without widening the public contract.
type loggable interface {
	setLogger(log *zap.Logger)
}
