package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jonathan/cv-studio/internal/document"
	"github.com/jonathan/cv-studio/internal/render"
)

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteError sends an error event
func (s *SSEWriter) WriteError(message string) {
	s.WriteEvent("error", map[string]string{"error": message}) //nolint:errcheck
}

// debounce window for editors that write the file in several bursts
const watchDebounce = 150 * time.Millisecond

// handleEvents streams preview updates whenever the backing document
// file changes. Server-side edits are picked up through the same watch
// because every mutation is saved to the file.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		sse.WriteError("failed to start file watcher: " + err.Error())
		return
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that save via
	// rename-over would otherwise drop the watch after the first save.
	docPath := s.state.Path()
	if err := watcher.Add(filepath.Dir(docPath)); err != nil {
		sse.WriteError("failed to watch document directory: " + err.Error())
		return
	}

	// Initial render so clients have content before the first change.
	if err := s.sendPreview(sse); err != nil {
		return
	}

	var pending *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-r.Context().Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(docPath) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(watchDebounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			if err := s.state.Reload(); err != nil {
				log.Printf("[watch] reload failed: %v", err)
				sse.WriteError("document reload failed: " + err.Error())
				continue
			}
			if err := s.sendPreview(sse); err != nil {
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[watch] watcher error: %v", err)
		}
	}
}

// sendPreview renders the current document and pushes it as a preview event
func (s *Server) sendPreview(sse *SSEWriter) error {
	var html string
	s.state.Read(func(doc *document.Document) {
		html = render.Preview(doc)
	})
	return sse.WriteEvent("preview", map[string]string{"html": html})
}
