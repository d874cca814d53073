package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Store loads and persists a whole journal document.
//
// Journals call Load once when opened and Persist after every mutation. There
// is no locking: two processes persisting the same document concurrently lose
// the first write (last writer wins).
type Store interface {
	// Load returns the persisted document. An error wrapping fs.ErrNotExist
	// means nothing was persisted yet.
	Load() ([]byte, error)
	// Persist replaces the persisted document with data.
	Persist(data []byte) error
}

// FileStore persists a document in a single file.
type FileStore struct {
	Path string
}

// Load reads the whole file.
func (s FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return data, nil
}

// Persist writes data to a temporary file next to Path and renames it over
// Path, so that a failed write leaves the previous document in place.
func (s FileStore) Persist(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("%w: could not create directory for %q: %w", ErrStorage, s.Path, err)
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: could not write %q: %w", ErrStorage, tmp, err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		return fmt.Errorf("%w: could not replace %q: %w", ErrStorage, s.Path, err)
	}
	return nil
}

func (s FileStore) String() string { return s.Path }

// MemStore keeps the document in memory and journals the calls it receives.
// Its zero value is an empty store.
type MemStore struct {
	Data []byte
	Ops  []string // "load" and "persist", in call order

	LoadErr    error // returned by Load when set
	PersistErr error // returned by Persist when set
}

// NewMemStore returns a store holding a copy of data.
func NewMemStore(data []byte) *MemStore { return &MemStore{Data: slices.Clone(data)} }

func (m *MemStore) Load() ([]byte, error) {
	m.Ops = append(m.Ops, "load")
	if m.LoadErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, m.LoadErr)
	}
	return slices.Clone(m.Data), nil
}

func (m *MemStore) Persist(data []byte) error {
	m.Ops = append(m.Ops, "persist")
	if m.PersistErr != nil {
		return fmt.Errorf("%w: %w", ErrStorage, m.PersistErr)
	}
	m.Data = slices.Clone(data)
	return nil
}
