package entities

// Folder is a not-yet-created personal-vault folder referenced by
// position from relationship pairs.
type Folder struct {
	Name string `json:"name"`
}

// Collection is a not-yet-created organization collection referenced by
// position from relationship pairs.
type Collection struct {
	Name string `json:"name"`
}

// RelationshipPair expresses "the cipher at index Cipher belongs to the
// folder/collection at index Container". Indices are assigned at append
// time and are the only identity either side has until the server
// creates real records; the lists they point into must never be
// reordered after a pair is recorded.
type RelationshipPair struct {
	Cipher    int `json:"key"`
	Container int `json:"value"`
}

// ImportResult is the canonical accumulator a parser builds and returns.
// One instance is created per parse invocation and fully populated
// before it is handed to the orchestrator.
type ImportResult struct {
	Success         bool
	MissingPassword bool
	ErrorMessage    string

	Ciphers             []*Cipher
	Folders             []Folder
	FolderRelationships []RelationshipPair

	Collections             []Collection
	CollectionRelationships []RelationshipPair
}

// NewImportResult returns an empty result marked successful; parsers
// flip Success off when the input is structurally unusable.
func NewImportResult() *ImportResult {
	return &ImportResult{Success: true}
}

// Fail marks the result as a structural parse failure.
func (r *ImportResult) Fail(message string) *ImportResult {
	r.Success = false
	r.ErrorMessage = message
	return r
}
