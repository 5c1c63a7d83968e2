// Package credential loads service-account credential documents (the JSON key
// files issued for a Google service account).
package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Document is the subset of a service-account key file used downstream.
// Unknown fields in the file are ignored.
type Document struct {
	Type         string `json:"type"`
	ProjectID    string `json:"project_id"`
	PrivateKeyID string `json:"private_key_id"`
	PrivateKey   string `json:"private_key"`
	ClientEmail  string `json:"client_email"`
}

// LoadError reports that a credential document could not be read or parsed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load credentials %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

var (
	errMissingPrivateKey  = errors.New("missing private_key field")
	errMissingClientEmail = errors.New("missing client_email field")
)

// Load reads and parses the credential document at path.
// It fails with *LoadError when the file is missing, unreadable, not JSON,
// or lacks the private_key or client_email field.
func Load(path string) (*Document, error) {
	if path == "" {
		return nil, &LoadError{Path: path, Err: errors.New("no credentials path configured")}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("parse json: %w", err)}
	}

	switch {
	case doc.PrivateKey == "":
		return nil, &LoadError{Path: path, Err: errMissingPrivateKey}
	case doc.ClientEmail == "":
		return nil, &LoadError{Path: path, Err: errMissingClientEmail}
	}
	return &doc, nil
}
