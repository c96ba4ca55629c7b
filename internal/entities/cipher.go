package entities

// CipherType identifies the variant of an imported record. The numeric
// values match the vault server's wire protocol.
type CipherType int

const (
	CipherTypeLogin      CipherType = 1
	CipherTypeSecureNote CipherType = 2
	CipherTypeCard       CipherType = 3
	CipherTypeIdentity   CipherType = 4
)

func (t CipherType) String() string {
	switch t {
	case CipherTypeLogin:
		return "Login"
	case CipherTypeSecureNote:
		return "Note"
	case CipherTypeCard:
		return "Card"
	case CipherTypeIdentity:
		return "Identity"
	default:
		return "Unknown"
	}
}

// SecureNoteType is the sub-kind of a secure note. Only the generic
// kind exists today.
type SecureNoteType int

const (
	SecureNoteTypeGeneric SecureNoteType = 0
)

// FieldType tags a custom key/value field.
type FieldType int

const (
	FieldTypeText   FieldType = 0
	FieldTypeHidden FieldType = 1
)

// URIMatch selects the autofill match strategy for a login URI.
type URIMatch int

const (
	URIMatchDomain     URIMatch = 0
	URIMatchHost       URIMatch = 1
	URIMatchStartsWith URIMatch = 2
	URIMatchExact      URIMatch = 3
	URIMatchRegexp     URIMatch = 4
	URIMatchNever      URIMatch = 5
)

// BlankName is the placeholder assigned to ciphers whose source row
// carried no usable name. Downstream display code assumes a non-empty
// name, so a cipher never leaves a parser with a blank one.
const BlankName = "--"

// Cipher is a single imported credential-like record. Exactly one of
// Login, Card, Identity or SecureNote is non-nil, matching Type.
type Cipher struct {
	Type       CipherType  `json:"type"`
	Name       string      `json:"name"`
	Notes      string      `json:"notes,omitempty"`
	Favorite   bool        `json:"favorite"`
	Fields     []Field     `json:"fields,omitempty"`
	Login      *Login      `json:"login,omitempty"`
	Card       *Card       `json:"card,omitempty"`
	Identity   *Identity   `json:"identity,omitempty"`
	SecureNote *SecureNote `json:"secureNote,omitempty"`
}

// Field is an open-ended key/value attribute attached to any cipher.
type Field struct {
	Name  string    `json:"name"`
	Value string    `json:"value"`
	Type  FieldType `json:"type"`
}

// Login holds credential data for CipherTypeLogin.
type Login struct {
	Username string     `json:"username,omitempty"`
	Password string     `json:"password,omitempty"`
	TOTP     string     `json:"totp,omitempty"`
	URIs     []LoginURI `json:"uris,omitempty"`
}

// LoginURI is a single URI associated with a login, optionally carrying
// a match strategy.
type LoginURI struct {
	URI   string    `json:"uri"`
	Match *URIMatch `json:"match,omitempty"`
}

// Card holds payment-card data for CipherTypeCard.
type Card struct {
	CardholderName string `json:"cardholderName,omitempty"`
	Number         string `json:"number,omitempty"`
	Brand          string `json:"brand,omitempty"`
	ExpMonth       string `json:"expMonth,omitempty"`
	ExpYear        string `json:"expYear,omitempty"`
	Code           string `json:"code,omitempty"`
}

// Identity holds personal-identity data for CipherTypeIdentity.
type Identity struct {
	Title          string `json:"title,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	MiddleName     string `json:"middleName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Address1       string `json:"address1,omitempty"`
	Address2       string `json:"address2,omitempty"`
	Address3       string `json:"address3,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
	Country        string `json:"country,omitempty"`
	Company        string `json:"company,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	SSN            string `json:"ssn,omitempty"`
	Username       string `json:"username,omitempty"`
	PassportNumber string `json:"passportNumber,omitempty"`
	LicenseNumber  string `json:"licenseNumber,omitempty"`
}

// SecureNote holds note data for CipherTypeSecureNote.
type SecureNote struct {
	Type SecureNoteType `json:"type"`
}

// NewLoginCipher returns a login cipher with its sub-record allocated.
func NewLoginCipher() *Cipher {
	return &Cipher{Type: CipherTypeLogin, Login: &Login{}}
}

// NewCardCipher returns a card cipher with its sub-record allocated.
func NewCardCipher() *Cipher {
	return &Cipher{Type: CipherTypeCard, Card: &Card{}}
}

// NewIdentityCipher returns an identity cipher with its sub-record allocated.
func NewIdentityCipher() *Cipher {
	return &Cipher{Type: CipherTypeIdentity, Identity: &Identity{}}
}

// NewSecureNoteCipher returns a generic secure note cipher.
func NewSecureNoteCipher() *Cipher {
	return &Cipher{Type: CipherTypeSecureNote, SecureNote: &SecureNote{Type: SecureNoteTypeGeneric}}
}
