package server

import (
	"sync"

	"github.com/jonathan/cv-studio/internal/document"
	"github.com/jonathan/cv-studio/internal/store"
)

// DocumentState owns the in-memory document for an editor session. All
// reads and mutations go through the mutex, so handlers never see a
// half-applied edit. Mutations are persisted to the backing file before
// the lock is released.
type DocumentState struct {
	mu   sync.Mutex
	doc  *document.Document
	path string
}

// NewDocumentState loads the document from path.
func NewDocumentState(path string) (*DocumentState, error) {
	doc, err := store.Load(path)
	if err != nil {
		return nil, err
	}
	return &DocumentState{doc: doc, path: path}, nil
}

// Path returns the backing file path.
func (st *DocumentState) Path() string {
	return st.path
}

// Read runs fn with the current document under the lock. fn must not
// retain the pointer past the call.
func (st *DocumentState) Read(fn func(doc *document.Document)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	fn(st.doc)
}

// Snapshot returns a deep copy of the current document, safe to use
// outside the lock. AI handlers work on snapshots so a long completion
// call never blocks editing.
func (st *DocumentState) Snapshot() *document.Document {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.doc.Clone()
}

// Update runs fn under the lock and, if fn succeeds, saves the document
// to the backing file. A failed fn leaves the file untouched.
func (st *DocumentState) Update(fn func(doc *document.Document) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := fn(st.doc); err != nil {
		return err
	}
	return store.Save(st.doc, st.path)
}

// Replace swaps the whole document and persists it.
func (st *DocumentState) Replace(doc *document.Document) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.doc = doc
	return store.Save(st.doc, st.path)
}

// Reload re-reads the document from the backing file. Used when the file
// changes on disk outside this process.
func (st *DocumentState) Reload() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	doc, err := store.Load(st.path)
	if err != nil {
		return err
	}
	st.doc = doc
	return nil
}
