// Package vfs implements the virtual file store: an append-only mapping
// from FileID handles to interned path/content pairs. The diagnostic
// renderer resolves spans through it; nothing else mutates it after load.
package vfs

import (
	"fortio.org/safecast"

	"github.com/wave-lang/wavec/internal/text"
)

type entry struct {
	path    string
	content string
}

// Store owns copies of every registered file. Handles are dense and
// allocated in insertion order; entries live until Cleanup.
type Store struct {
	files []entry
}

// NewStore returns an empty file store.
func NewStore() *Store {
	return &Store{}
}

// AddFile copies path and content into stable storage and returns a new
// handle. The first file gets FileID 1; text.NoFile is never returned.
func (s *Store) AddFile(path, content string) text.FileID {
	s.files = append(s.files, entry{path: path, content: content})
	id, err := safecast.Convert[uint32](len(s.files))
	if err != nil {
		panic("vfs: file id overflow")
	}
	return text.FileID(id)
}

// Filepath returns the registered path for id, or false for handles the
// store never issued.
func (s *Store) Filepath(id text.FileID) (string, bool) {
	if id == text.NoFile || int(id) > len(s.files) {
		return "", false
	}
	return s.files[id-1].path, true
}

// Filecontent returns the registered content for id, or false for handles
// the store never issued.
func (s *Store) Filecontent(id text.FileID) (string, bool) {
	if id == text.NoFile || int(id) > len(s.files) {
		return "", false
	}
	return s.files[id-1].content, true
}

// Cleanup releases all entries. Previously issued handles stop resolving.
func (s *Store) Cleanup() {
	s.files = nil
}

// defaultStore is the process-wide store consulted by the top-level
// convenience functions and the diagnostic emitter.
var defaultStore = NewStore()

// Default returns the process-wide store.
func Default() *Store {
	return defaultStore
}

// AddFile registers a file with the process-wide store.
func AddFile(path, content string) text.FileID {
	return defaultStore.AddFile(path, content)
}

// Filepath looks up a path in the process-wide store.
func Filepath(id text.FileID) (string, bool) {
	return defaultStore.Filepath(id)
}

// Filecontent looks up file content in the process-wide store.
func Filecontent(id text.FileID) (string, bool) {
	return defaultStore.Filecontent(id)
}

// Cleanup releases all entries in the process-wide store.
func Cleanup() {
	defaultStore.Cleanup()
}
