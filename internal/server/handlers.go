package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shubh-37/website-section-generator/internal/database"
	"go.uber.org/zap"
)

const (
	msgInvalidRequest   = "Invalid request data"
	msgGenerateFailed   = "Failed to generate sections"
	msgFetchFailed      = "Failed to fetch sections"
	msgInvalidIdeaID    = "Invalid website idea ID"
	msgIdeaNotFound     = "Website idea not found"
	msgFetchIdeasFailed = "Failed to fetch website ideas"
)

type generateRequest struct {
	Idea string `json:"idea" validate:"required,notblank"`
}

// POST /api/generate-sections
func (s *Server) generateSections(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		s.logger.Debug("invalid generate request body", zap.Error(err), zap.String("requestId", GetRequestID(r.Context())))
		writeMessage(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := validateStruct(req); err != nil {
		s.logger.Debug("generate request failed validation", zap.Error(err), zap.String("requestId", GetRequestID(r.Context())))
		writeMessage(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	result, err := s.svc.Generate(r.Context(), req.Idea)
	if err != nil {
		s.logger.Error("error generating sections", zap.Error(err), zap.String("requestId", GetRequestID(r.Context())))
		writeMessage(w, http.StatusBadRequest, msgGenerateFailed)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GET /api/sections
func (s *Server) getAllSections(w http.ResponseWriter, r *http.Request) {
	sections, err := s.svc.ListSections(r.Context())
	if err != nil {
		s.logger.Error("error fetching sections", zap.Error(err), zap.String("requestId", GetRequestID(r.Context())))
		writeMessage(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	writeJSON(w, http.StatusOK, sections)
}

// GET /api/sections/{websiteIdeaId}
func (s *Server) getSectionsByWebsiteID(w http.ResponseWriter, r *http.Request) {
	websiteIdeaID, ok := parseIdeaID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, msgInvalidIdeaID)
		return
	}

	sections, err := s.svc.ListSectionsByIdea(r.Context(), websiteIdeaID)
	if err != nil {
		s.logger.Error("error fetching sections", zap.Error(err), zap.Int64("websiteIdeaId", websiteIdeaID))
		writeMessage(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	writeJSON(w, http.StatusOK, sections)
}

// GET /api/ideas
func (s *Server) listIdeas(w http.ResponseWriter, r *http.Request) {
	ideas, err := s.svc.ListIdeas(r.Context())
	if err != nil {
		s.logger.Error("error fetching website ideas", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, msgFetchIdeasFailed)
		return
	}

	writeJSON(w, http.StatusOK, ideas)
}

// GET /api/ideas/{websiteIdeaId}
func (s *Server) getIdea(w http.ResponseWriter, r *http.Request) {
	websiteIdeaID, ok := parseIdeaID(r)
	if !ok {
		writeMessage(w, http.StatusBadRequest, msgInvalidIdeaID)
		return
	}

	idea, err := s.svc.GetIdea(r.Context(), websiteIdeaID)
	if errors.Is(err, database.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, msgIdeaNotFound)
		return
	}
	if err != nil {
		s.logger.Error("error fetching website idea", zap.Error(err), zap.Int64("websiteIdeaId", websiteIdeaID))
		writeMessage(w, http.StatusInternalServerError, msgFetchIdeasFailed)
		return
	}

	writeJSON(w, http.StatusOK, idea)
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"store":  s.svc.StoreName(),
	})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, statusResponse{
		Status:  "fail",
		Message: "Route " + r.URL.Path + " not found",
	})
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, statusResponse{
		Status:  "fail",
		Message: "Method " + r.Method + " not allowed on " + r.URL.Path,
	})
}

func parseIdeaID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "websiteIdeaId"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
