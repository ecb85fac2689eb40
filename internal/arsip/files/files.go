// Package files is the attachment store: it holds uploaded letter documents
// and hands back the reference path recorded on the letter row.
package files

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("files: not found")

// Store persists letter attachments. Implementations: local disk, S3.
type Store interface {
	// Save persists the upload under a collision-resistant name derived from
	// the original filename's extension and returns the reference to record
	// on the letter.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)

	// Remove deletes the stored attachment. Removing a reference that no
	// longer exists is success, not an error.
	Remove(ctx context.Context, ref string) error

	// Open streams the stored attachment.
	Open(ctx context.Context, ref string) (io.ReadCloser, error)

	// RedirectURL returns a short-lived URL the client can be redirected to
	// for direct download, or "" when content must be streamed via Open.
	RedirectURL(ctx context.Context, ref string) (string, error)
}
