package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"solsite/apperr"
	"solsite/job"
	"solsite/upload"
)

// multipartOverhead covers boundaries and text fields on top of the
// attachment itself.
const multipartOverhead = 1 << 20

type jobResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Country   *string   `json:"country"`
	JobTitle  *string   `json:"jobTitle"`
	FileURL   *string   `json:"fileUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func toJobResponse(req job.Requirement) jobResponse {
	return jobResponse{
		ID:        req.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Country:   req.Country,
		JobTitle:  req.JobTitle,
		FileURL:   req.FileURL,
		CreatedAt: req.CreatedAt,
	}
}

// handleCreateJob accepts a multipart form with text fields plus an
// optional "file" part. The attachment is validated and stored before the
// row is inserted; any upload failure leaves no record behind.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+multipartOverhead)

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondFailure(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		respondFailure(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	params := job.CreateParams{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Phone:    r.FormValue("phone"),
		Country:  r.FormValue("country"),
		JobTitle: r.FormValue("jobTitle"),
	}

	var file *upload.File
	part, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer part.Close()
		file = &upload.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     part,
		}
	case errors.Is(err, http.ErrMissingFile):
		// attachment is optional
	default:
		respondFailure(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	req, err := s.jobs.Create(r.Context(), params, file)
	if err != nil {
		if file != nil && s.metrics != nil {
			var verr *apperr.ValidationError
			switch {
			case errors.Is(err, upload.ErrStore):
				s.metrics.RecordUpload("failed")
			case errors.As(err, &verr):
				s.metrics.RecordUpload("rejected")
			}
		}
		s.serviceError(w, r, err, nil)
		return
	}

	if file != nil && s.metrics != nil {
		s.metrics.RecordUpload("ok")
	}
	respondData(w, http.StatusCreated, toJobResponse(req))
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	reqs, err := s.jobs.List(r.Context())
	if err != nil {
		s.serviceError(w, r, err, nil)
		return
	}

	out := make([]jobResponse, len(reqs))
	for i, req := range reqs {
		out[i] = toJobResponse(req)
	}
	respondData(w, http.StatusOK, out)
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	req, err := s.jobs.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, r, err, job.ErrNotFound)
		return
	}
	respondData(w, http.StatusOK, toJobResponse(req))
}
