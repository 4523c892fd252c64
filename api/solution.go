package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"solsite/solution"
)

type solutionResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Summary      *string   `json:"summary"`
	ProjectStory *string   `json:"projectStory"`
	IconURL      *string   `json:"iconUrl"`
	ImageURL     *string   `json:"imageUrl"`
	Type         string    `json:"type"`
	Category     *string   `json:"category"`
	Features     []string  `json:"features"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toSolutionResponse(rec solution.Record) solutionResponse {
	return solutionResponse{
		ID:           rec.ID,
		Name:         rec.Name,
		Summary:      rec.Summary,
		ProjectStory: rec.ProjectStory,
		IconURL:      rec.IconURL,
		ImageURL:     rec.ImageURL,
		Type:         string(rec.Type),
		Category:     rec.Category,
		Features:     rec.Features,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

type createSolutionRequest struct {
	Name         string   `json:"name"`
	Summary      string   `json:"summary"`
	ProjectStory string   `json:"projectStory"`
	IconURL      string   `json:"iconUrl"`
	ImageURL     string   `json:"imageUrl"`
	Type         string   `json:"type"`
	Category     string   `json:"category"`
	Features     []string `json:"features"`
}

type updateSolutionRequest struct {
	Name         *string  `json:"name"`
	Summary      *string  `json:"summary"`
	ProjectStory *string  `json:"projectStory"`
	IconURL      *string  `json:"iconUrl"`
	ImageURL     *string  `json:"imageUrl"`
	Category     *string  `json:"category"`
	Features     []string `json:"features"`
}

func (s *Server) handleListSolutions(w http.ResponseWriter, r *http.Request) {
	recs, err := s.solutions.ListByType(r.Context(), solution.Type(r.URL.Query().Get("type")))
	if err != nil {
		s.serviceError(w, r, err, nil)
		return
	}

	out := make([]solutionResponse, len(recs))
	for i, rec := range recs {
		out[i] = toSolutionResponse(rec)
	}
	respondData(w, http.StatusOK, out)
}

func (s *Server) handleGetSolution(w http.ResponseWriter, r *http.Request) {
	rec, err := s.solutions.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, r, err, solution.ErrNotFound)
		return
	}
	respondData(w, http.StatusOK, toSolutionResponse(rec))
}

func (s *Server) handleCreateSolution(w http.ResponseWriter, r *http.Request) {
	var req createSolutionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rec, err := s.solutions.Create(r.Context(), solution.CreateParams{
		Name:         req.Name,
		Summary:      req.Summary,
		ProjectStory: req.ProjectStory,
		IconURL:      req.IconURL,
		ImageURL:     req.ImageURL,
		Type:         solution.Type(req.Type),
		Category:     req.Category,
		Features:     req.Features,
	})
	if err != nil {
		s.serviceError(w, r, err, nil)
		return
	}

	respondData(w, http.StatusCreated, toSolutionResponse(rec))
}

func (s *Server) handleUpdateSolution(w http.ResponseWriter, r *http.Request) {
	var req updateSolutionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := s.solutions.Update(r.Context(), chi.URLParam(r, "id"), solution.UpdateParams{
		Name:         req.Name,
		Summary:      req.Summary,
		ProjectStory: req.ProjectStory,
		IconURL:      req.IconURL,
		ImageURL:     req.ImageURL,
		Category:     req.Category,
		Features:     req.Features,
	})
	if err != nil {
		s.serviceError(w, r, err, solution.ErrNotFound)
		return
	}

	respondMessage(w, http.StatusOK, "Solution updated")
}

func (s *Server) handleDeleteSolution(w http.ResponseWriter, r *http.Request) {
	if err := s.solutions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.serviceError(w, r, err, solution.ErrNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Solution deleted")
}
