package importers

import (
	"strings"

	"github.com/vaultport/vaultport/internal/entities"
)

// maxFieldLength is the ceiling above which a classified value is
// demoted into free-text notes instead of a structured field.
const maxFieldLength = 200

// builder is the mutable accumulator a parser threads through the
// shared helpers while populating one ImportResult. Keeping it an
// explicit value (rather than ambient state) keeps parsers
// independently testable.
type builder struct {
	result *entities.ImportResult

	// exact-name indices for folder/collection deduplication
	folderIdx     map[string]int
	collectionIdx map[string]int
}

func newBuilder() *builder {
	return &builder{
		result:        entities.NewImportResult(),
		folderIdx:     make(map[string]int),
		collectionIdx: make(map[string]int),
	}
}

// addCipher normalizes the cipher, applies the login→note
// reclassification recovery, appends it and returns its index. The
// index equals len(Ciphers) at the moment of the append and is the
// cipher's only identity until the server assigns a real one, so
// callers record relationships immediately after this call and the
// list is never reordered afterwards.
func (b *builder) addCipher(c *entities.Cipher) int {
	cleanupCipher(c)
	convertToNoteIfNeeded(c)
	idx := len(b.result.Ciphers)
	b.result.Ciphers = append(b.result.Ciphers, c)
	return idx
}

// addToFolder records that the cipher at cipherIdx belongs to the named
// folder, reusing the index of an existing folder with the exact same
// name. A blank name is a no-op.
func (b *builder) addToFolder(cipherIdx int, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	idx, ok := b.folderIdx[name]
	if !ok {
		idx = len(b.result.Folders)
		b.result.Folders = append(b.result.Folders, entities.Folder{Name: name})
		b.folderIdx[name] = idx
	}
	b.result.FolderRelationships = append(b.result.FolderRelationships,
		entities.RelationshipPair{Cipher: cipherIdx, Container: idx})
}

// addToCollection is the collection-side counterpart of addToFolder,
// used by formats that carry organization groupings natively.
func (b *builder) addToCollection(cipherIdx int, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	idx, ok := b.collectionIdx[name]
	if !ok {
		idx = len(b.result.Collections)
		b.result.Collections = append(b.result.Collections, entities.Collection{Name: name})
		b.collectionIdx[name] = idx
	}
	b.result.CollectionRelationships = append(b.result.CollectionRelationships,
		entities.RelationshipPair{Cipher: cipherIdx, Container: idx})
}

// moveFoldersToCollections rewrites folder data as collection data for
// organization destinations. It must run once, after all per-row
// relationship recording; interleaving it with row processing would
// leave relationship indices pointing at a collections list that does
// not yet mirror the folders list.
func (b *builder) moveFoldersToCollections() {
	r := b.result
	// migrated folders land after any natively-recorded collections, so
	// folder relationship indices shift by the existing collection count
	offset := len(r.Collections)
	for _, rel := range r.FolderRelationships {
		r.CollectionRelationships = append(r.CollectionRelationships,
			entities.RelationshipPair{Cipher: rel.Cipher, Container: rel.Container + offset})
	}
	for _, f := range r.Folders {
		r.Collections = append(r.Collections, entities.Collection(f))
	}
	r.Folders = nil
	r.FolderRelationships = nil
	b.folderIdx = make(map[string]int)
}

// processKV attaches a free-form key/value pair to the cipher as a
// text field, subject to the overflow-to-notes policy.
func processKV(c *entities.Cipher, key, value string) {
	processKVTyped(c, key, value, entities.FieldTypeText)
}

// processHiddenKV attaches the pair as a hidden field (passwords,
// PINs and the like), subject to the same overflow policy.
func processHiddenKV(c *entities.Cipher, key, value string) {
	processKVTyped(c, key, value, entities.FieldTypeHidden)
}

func processKVTyped(c *entities.Cipher, key, value string, fieldType entities.FieldType) {
	if value == "" {
		return
	}
	// Over-long or multiline values would blow past structured-field
	// storage limits; demote them to notes verbatim.
	if len([]rune(value)) > maxFieldLength || strings.ContainsAny(value, "\r\n") {
		appendNote(c, key+": "+value)
		return
	}
	c.Fields = append(c.Fields, entities.Field{Name: key, Value: value, Type: fieldType})
}

func appendNote(c *entities.Cipher, line string) {
	c.Notes += line + "\n"
}

// cleanupCipher trims whitespace and guarantees a non-empty name.
func cleanupCipher(c *entities.Cipher) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		c.Name = entities.BlankName
	}
	c.Notes = strings.TrimSpace(c.Notes)
}

// convertToNoteIfNeeded retypes a login that carries none of a login's
// defining attributes into a generic secure note. Source data that
// nominally claims to be a login but has no username, no password and
// no URIs is worth keeping as a plain note rather than dropping.
func convertToNoteIfNeeded(c *entities.Cipher) {
	if c.Type != entities.CipherTypeLogin {
		return
	}
	l := c.Login
	if l != nil && (l.Username != "" || l.Password != "" || len(l.URIs) > 0) {
		return
	}
	c.Type = entities.CipherTypeSecureNote
	c.Login = nil
	c.SecureNote = &entities.SecureNote{Type: entities.SecureNoteTypeGeneric}
}
