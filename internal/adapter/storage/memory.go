package storage

import "namematch/internal/port"

// MemorySource is an in-memory CorpusSource, mainly for tests and for
// running the engine without persistence.
type MemorySource struct {
	names  []string
	exists bool
	saves  int
}

// NewMemorySource creates an empty source that reports ErrNotFound until
// the first Save.
func NewMemorySource() *MemorySource {
	return &MemorySource{}
}

// NewMemorySourceWith creates a source preloaded with names.
func NewMemorySourceWith(names []string) *MemorySource {
	s := &MemorySource{exists: true}
	s.names = append(s.names, names...)
	return s
}

func (s *MemorySource) Load() ([]string, error) {
	if !s.exists {
		return nil, port.ErrNotFound
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out, nil
}

func (s *MemorySource) Save(names []string) error {
	s.names = append(s.names[:0], names...)
	s.exists = true
	s.saves++
	return nil
}

func (s *MemorySource) Close() error {
	return nil
}

// Saves returns how many times Save was called.
func (s *MemorySource) Saves() int {
	return s.saves
}
