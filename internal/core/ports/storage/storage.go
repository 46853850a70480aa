package storage

import (
	"context"
	"io"
)

// ArtifactStore accepts named byte streams tagged with a journal identifier
// and returns retrievable references. Backed by S3-compatible object storage
// in production.
type ArtifactStore interface {
	// StoreJournalPDF writes the stream under a journal-scoped key and
	// returns the storage key and a retrievable URL.
	StoreJournalPDF(ctx context.Context, journalID string, filename string, body io.Reader) (key string, url string, err error)

	// DeleteArtifact removes a previously stored artifact. Used to clean up
	// when journal persistence fails after upload.
	DeleteArtifact(ctx context.Context, key string) error
}
