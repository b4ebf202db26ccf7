package server

import (
	"net/http"

	"github.com/jonathan/cv-studio/internal/document"
	"github.com/jonathan/cv-studio/internal/render"
	"github.com/jonathan/cv-studio/internal/store"
)

// ---------------------------------------------------------------------
// Export Handlers
// ---------------------------------------------------------------------

func (s *Server) handleExportHTML(w http.ResponseWriter, _ *http.Request) {
	var page string
	s.state.Read(func(doc *document.Document) {
		page = store.RenderPrintable(doc, render.Preview(doc))
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="cv.html"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(page)) //nolint:errcheck
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	var page string
	s.state.Read(func(doc *document.Document) {
		page = store.RenderPrintable(doc, render.Preview(doc))
	})

	pdf, err := store.RenderPDF(r.Context(), page)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "PDF render failed: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="cv.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf) //nolint:errcheck
}

func (s *Server) handleExportJSON(w http.ResponseWriter, _ *http.Request) {
	var data []byte
	var err error
	s.state.Read(func(doc *document.Document) {
		data, err = store.Serialize(doc)
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to serialize document: "+err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="cv.json"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}
