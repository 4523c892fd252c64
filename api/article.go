package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"solsite/article"
)

type articleResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   *string   `json:"excerpt"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"imageUrl"`
	Category  *string   `json:"category"`
	Author    *string   `json:"author"`
	ReadTime  *string   `json:"readTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toArticleResponse(rec article.Record) articleResponse {
	return articleResponse{
		ID:        rec.ID,
		Title:     rec.Title,
		Excerpt:   rec.Excerpt,
		Content:   rec.Content,
		ImageURL:  rec.ImageURL,
		Category:  rec.Category,
		Author:    rec.Author,
		ReadTime:  rec.ReadTime,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func toArticleResponses(recs []article.Record) []articleResponse {
	out := make([]articleResponse, len(recs))
	for i, rec := range recs {
		out[i] = toArticleResponse(rec)
	}
	return out
}

type createArticleRequest struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	Category string `json:"category"`
	Author   string `json:"author"`
	ReadTime string `json:"readTime"`
}

type updateArticleRequest struct {
	Title    *string `json:"title"`
	Excerpt  *string `json:"excerpt"`
	Content  *string `json:"content"`
	ImageURL *string `json:"imageUrl"`
	Category *string `json:"category"`
	Author   *string `json:"author"`
	ReadTime *string `json:"readTime"`
}

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	recs, err := s.articles.List(r.Context())
	if err != nil {
		s.serviceError(w, r, err, nil)
		return
	}
	respondData(w, http.StatusOK, toArticleResponses(recs))
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	rec, err := s.articles.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, r, err, article.ErrNotFound)
		return
	}
	respondData(w, http.StatusOK, toArticleResponse(rec))
}

func (s *Server) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rec, err := s.articles.Create(r.Context(), article.CreateParams{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Category: req.Category,
		Author:   req.Author,
		ReadTime: req.ReadTime,
	})
	if err != nil {
		s.serviceError(w, r, err, nil)
		return
	}

	respondData(w, http.StatusCreated, toArticleResponse(rec))
}

func (s *Server) handleUpdateArticle(w http.ResponseWriter, r *http.Request) {
	var req updateArticleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := s.articles.Update(r.Context(), chi.URLParam(r, "id"), article.UpdateParams{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Category: req.Category,
		Author:   req.Author,
		ReadTime: req.ReadTime,
	})
	if err != nil {
		s.serviceError(w, r, err, article.ErrNotFound)
		return
	}

	respondMessage(w, http.StatusOK, "Article updated")
}

func (s *Server) handleDeleteArticle(w http.ResponseWriter, r *http.Request) {
	if err := s.articles.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.serviceError(w, r, err, article.ErrNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Article deleted")
}
