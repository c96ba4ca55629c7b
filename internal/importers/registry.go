package importers

import (
	"errors"
	"sort"

	"go.uber.org/zap"
)

// ErrUnknownFormat is returned by For when no parser is registered for
// a format tag. Callers must treat it as a configuration error, not a
// parse failure.
var ErrUnknownFormat = errors.New("unknown import format")

// Option configures parser construction.
type Option func(*options)

type options struct {
	password string
	log      *zap.Logger
}

// WithPassword supplies the decryption passphrase required by
// password-protected container formats. Ignored by every other format.
func WithPassword(password string) Option {
	return func(o *options) { o.password = password }
}

// WithLogger attaches a logger for row-level skip warnings.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

// registry is the closed dispatch table from format tag to parser
// constructor. Several tags share one constructor when vendors export
// the same shape.
var registry = map[string]func(o options) Importer{
	"chromecsv":        newChromium,
	"bravecsv":         newChromium,
	"edgecsv":          newChromium,
	"operacsv":         newChromium,
	"vivaldicsv":       newChromium,
	"yandexcsv":        newChromium,
	"firefoxcsv":       func(o options) Importer { return &FirefoxCSV{} },
	"safaricsv":        newSafari,
	"icloudcsv":        newSafari,
	"lastpasscsv":      func(o options) Importer { return &LastPassCSV{} },
	"vaultportcsv":     func(o options) Importer { return &VaultportCSV{} },
	"vaultportjson":    func(o options) Importer { return &VaultportJSON{} },
	"vaultportencjson": func(o options) Importer { return &VaultportEncryptedJSON{password: o.password} },
	"keepass2xml":      func(o options) Importer { return &KeePass2XML{} },
	"keepassxcsv":      func(o options) Importer { return &KeePassXCSV{} },
	"1password1pif":    func(o options) Importer { return &OnePassword1PIF{} },
	"dashlanecsv":      func(o options) Importer { return &DashlaneCSV{} },
	"enpasscsv":        func(o options) Importer { return &EnpassCSV{} },
	"safeincloudxml":   func(o options) Importer { return &SafeInCloudXML{} },
	"msecurecsv":       func(o options) Importer { return &MSecureCSV{} },
	"nordpasscsv":      func(o options) Importer { return &NordPassCSV{} },
	"zohovaultcsv":     func(o options) Importer { return &ZohoVaultCSV{} },
	"roboformcsv":      func(o options) Importer { return &RoboFormCSV{} },
	"padlockcsv":       func(o options) Importer { return &PadlockCSV{} },
	"clipperzhtml":     func(o options) Importer { return &ClipperzHTML{} },
}

func newChromium(o options) Importer { return &ChromiumCSV{} }
func newSafari(o options) Importer   { return &SafariCSV{} }

// For returns the parser registered for the given format tag.
func For(format string, opts ...Option) (Importer, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	construct, ok := registry[format]
	if !ok {
		return nil, ErrUnknownFormat
	}
	parser := construct(o)
	if o.log != nil {
		if l, ok := parser.(loggable); ok {
			l.setLogger(o.log)
		}
	}
	return parser, nil
}

// Formats returns the supported format tags, sorted for stable display.
func Formats() []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
