// Package upload validates job-application attachments and stores them in
// an external object store under a generated unique key.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"solsite/apperr"
)

// ErrStore signals the object store rejected the write. The owning record
// must not be created when this is returned.
var ErrStore = errors.New("upload: object store rejected write")

// allowedContentTypes is the fixed allow-list for job attachments.
var allowedContentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// DefaultMaxBytes is the attachment size ceiling.
const DefaultMaxBytes = 5 << 20

// ObjectStore abstracts the external storage backend. Put must refuse to
// overwrite an existing key.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	PublicURL(key string) string
}

// File describes one uploaded attachment.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Pipeline validates attachments and writes accepted ones to the store.
type Pipeline struct {
	store    ObjectStore
	maxBytes int64
	keygen   func() string
}

// NewPipeline builds a Pipeline. A non-positive maxBytes falls back to
// DefaultMaxBytes.
func NewPipeline(store ObjectStore, maxBytes int64) *Pipeline {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Pipeline{
		store:    store,
		maxBytes: maxBytes,
		keygen:   uuid.NewString,
	}
}

// WithKeyGenerator overrides key generation for tests.
func (p *Pipeline) WithKeyGenerator(gen func() string) *Pipeline {
	p.keygen = gen
	return p
}

// Store validates the file, writes it under a fresh unique key and
// returns the public URL. Validation happens before any byte reaches the
// store; a rejected file leaves no object behind.
func (p *Pipeline) Store(ctx context.Context, file File) (string, error) {
	var violations []string
	if !allowedContentTypes[file.ContentType] {
		violations = append(violations, "only PDF, DOC and DOCX files are allowed")
	}
	if file.Size > p.maxBytes {
		violations = append(violations, fmt.Sprintf("file exceeds the %d byte limit", p.maxBytes))
	}
	if file.Size <= 0 {
		violations = append(violations, "file is empty")
	}
	if len(violations) > 0 {
		return "", apperr.NewValidation(violations...)
	}

	key := "jobs/" + p.keygen() + "." + extension(file.Name)
	if err := p.store.Put(ctx, key, file.ContentType, file.Content, file.Size); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStore, err)
	}

	return p.store.PublicURL(key), nil
}

// extension extracts the filename extension, falling back to a generic
// one when the name has none.
func extension(name string) string {
	if idx := strings.LastIndex(name, "."); idx >= 0 && idx < len(name)-1 {
		return strings.ToLower(name[idx+1:])
	}
	return "bin"
}
