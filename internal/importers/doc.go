// Package importers converts export files produced by third-party
// credential managers into the canonical entities.ImportResult.
//
// # Architecture
//
// The pipeline follows a simple flow:
//
//	raw file text → Importer → entities.ImportResult → services.ImportService → vault API
//
// Each supported export format implements the Importer interface. A
// format tag (see Formats) selects the implementation through For;
// several tags may share one implementation when vendors export the
// same shape (all Chromium browsers share one CSV parser).
//
// Parsers never panic and never fail on individual malformed rows:
// bad rows are skipped with a warning and parsing continues. Only a
// missing top-level structure (no rows at all, no document root, no
// embedded payload) aborts with Success=false on the result.
//
// # Adding a new import source
//
//  1. Create a new file (e.g. kaspersky.go)
//
//  2. Embed base and build the result through a builder:
//
//     type KasperskyTXT struct {
//     base
//     }
//
//     func (p *KasperskyTXT) Parse(ctx context.Context, data string) (*entities.ImportResult, error) {
//     b := newBuilder()
//     // ... append ciphers, record folder membership ...
//     return p.finish(b), nil
//     }
//
//     var _ Importer = (*KasperskyTXT)(nil)
//
//  3. Register its format tag(s) in registry.go.
//
// The shared helpers (delimited.go, markup.go, fieldnames.go, uri.go,
// cards.go, names.go, builder.go) cover the recurring fuzzy work:
// header-keyed CSV reading, free-form field-name classification, URI
// fix-up, card brand and expiry inference, full-name splitting, the
// overflow-to-notes policy and folder/collection bookkeeping. Use them
// instead of re-rolling per format.
package importers
