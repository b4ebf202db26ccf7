package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-studio/internal/ai"
	"github.com/jonathan/cv-studio/internal/settings"
)

// Server represents the HTTP editor server
type Server struct {
	httpServer *http.Server
	state      *DocumentState
	engine     *ai.Engine
	settings   *settings.Store
	validate   *validator.Validate
}

// Config holds server configuration
type Config struct {
	Port     int
	Document string
	AI       ai.ClientConfig
	Settings *settings.Store
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	state, err := NewDocumentState(cfg.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	s := &Server{
		state:    state,
		settings: cfg.Settings,
		validate: validator.New(),
	}

	// The AI engine is only wired up when a key is configured. Handlers
	// that need it answer 401 otherwise, so the rest of the editor keeps
	// working without a key.
	if client, err := ai.NewClient(cfg.AI); err == nil {
		s.engine = ai.NewEngine(client)
	} else {
		var missing *ai.MissingKeyError
		if !errors.As(err, &missing) {
			return nil, fmt.Errorf("failed to create completion client: %w", err)
		}
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Document endpoints
	mux.HandleFunc("GET /document", s.handleGetDocument)
	mux.HandleFunc("PUT /document", s.handlePutDocument)
	mux.HandleFunc("GET /preview", s.handleGetPreview)

	// Section endpoints
	mux.HandleFunc("POST /sections", s.handleCreateSection)
	mux.HandleFunc("PUT /sections/{id}", s.handleUpdateSection)
	mux.HandleFunc("DELETE /sections/{id}", s.handleDeleteSection)
	mux.HandleFunc("POST /sections/{id}/duplicate", s.handleDuplicateSection)
	mux.HandleFunc("POST /sections/{id}/move", s.handleMoveSection)
	mux.HandleFunc("POST /sections/{id}/items", s.handleAddItem)
	mux.HandleFunc("DELETE /sections/{id}/items/{item_id}", s.handleRemoveItem)

	// AI endpoints
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /sections/{id}/enhance", s.handleEnhance)

	// Export endpoints
	mux.HandleFunc("GET /export/html", s.handleExportHTML)
	mux.HandleFunc("GET /export/pdf", s.handleExportPDF)
	mux.HandleFunc("GET /export/json", s.handleExportJSON)

	// Live preview stream
	mux.HandleFunc("GET /events", s.handleEvents)

	// Create HTTP server. Write timeout stays long because /export/pdf
	// waits on a headless Chrome render and /events is a long-lived stream.
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the server's HTTP handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Editor server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeAndValidate decodes the request body into req and runs struct
// validation. Returns false after writing the error response.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	// An empty body means "all defaults" for requests whose fields are
	// all optional.
	if err := json.NewDecoder(r.Body).Decode(req); err != nil && err != io.EOF {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}
	return true
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// domainError maps a domain error to its HTTP status and writes it
func (s *Server) domainError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
