package importers

import "strings"

// Lookup tables for classifying free-form column and label names onto
// structured fields. Matching is case-insensitive exact-token match
// against the table, not substring or fuzzy match; the lists include
// the common non-English labels seen in real exports.

var passwordFieldNames = []string{
	"password", "pass word", "passphrase", "pass phrase", "pass", "code",
	"code word", "codeword", "secret", "secret word", "key", "keyword",
	"key word", "keyphrase", "key phrase", "form_pw", "wppassword", "pin",
	"pwd", "pw", "pword", "passwd", "p", "serial", "serial#", "license key",
	"reg #",
	// non-English variants
	"passwort", "kennwort", "contraseña", "senha", "mot de passe",
	"hasło", "wachtwoord", "parola",
}

var usernameFieldNames = []string{
	"user", "name", "user name", "username", "login name", "email",
	"e-mail", "id", "userid", "user id", "login", "form_loginname",
	"wpname", "mail", "loginid", "login id", "log", "first name",
	"last name", "card#", "account #", "member", "member #",
	// non-English variants
	"benutzername", "benutzer name", "email adresse", "e-mail adresse",
	"nom d'utilisateur", "utilisateur", "usuario", "usuário",
	"gebruikersnaam", "użytkownik",
}

var uriFieldNames = []string{
	"url", "hyper link", "hyperlink", "link", "host", "hostname",
	"host name", "server", "address", "hyper ref", "href", "web",
	"website", "web site", "site", "web-site", "uri",
	// non-English variants
	"webseite", "seite", "sitio", "sitio web", "site web", "strona",
}

// isPasswordField reports whether a free-form label names a password.
func isPasswordField(name string) bool {
	return containsToken(passwordFieldNames, name)
}

// isUsernameField reports whether a free-form label names a username.
func isUsernameField(name string) bool {
	return containsToken(usernameFieldNames, name)
}

// isURIField reports whether a free-form label names a URI.
func isURIField(name string) bool {
	return containsToken(uriFieldNames, name)
}

func containsToken(table []string, name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	for _, t := range table {
		if t == name {
			return true
		}
	}
	return false
}
