package assignment

import "github.com/Checker-Finance/secretsync/internal/credential"

// Names of the secrets derived from a credential document.
const (
	PrivateKeyName          = "GOOGLE_PRIVATE_KEY"
	ServiceAccountEmailName = "GOOGLE_SERVICE_ACCOUNT_EMAIL"
)

// Assignment is a single secret destined for the remote configuration store.
// Value may span multiple lines.
type Assignment struct {
	Name  string
	Value string
}

// Token flattens the assignment to a NAME=VALUE argument.
func (a Assignment) Token() string {
	return a.Name + "=" + a.Value
}

// Build returns the fixed secrets in the order given, followed by the
// document-derived private key and service-account email. Values are passed
// through untouched.
func Build(doc *credential.Document, fixed []Assignment) []Assignment {
	out := make([]Assignment, 0, len(fixed)+2)
	out = append(out, fixed...)
	out = append(out,
		Assignment{Name: PrivateKeyName, Value: doc.PrivateKey},
		Assignment{Name: ServiceAccountEmailName, Value: doc.ClientEmail},
	)
	return out
}

// Names lists assignment names in order (safe to log).
func Names(list []Assignment) []string {
	names := make([]string, len(list))
	for i, a := range list {
		names[i] = a.Name
	}
	return names
}
