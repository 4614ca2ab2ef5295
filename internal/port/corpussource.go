package port

import "errors"

// ErrNotFound reports that the backing resource for a corpus does not exist
// yet. Callers substitute the default corpus rather than failing.
var ErrNotFound = errors.New("corpus not found")

// CorpusSource persists the ordered name corpus.
type CorpusSource interface {
	// Load returns the persisted names in order, or ErrNotFound when the
	// backing resource is absent.
	Load() ([]string, error)

	// Save writes the full corpus, replacing any previous record.
	Save(names []string) error

	Close() error
}
