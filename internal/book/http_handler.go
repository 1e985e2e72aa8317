package book

import (
	"net/http"
	"strconv"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} httpx.SuccessResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Error(r, w, err)
		return
	}

	created, err := h.svc.Create(r.Context(), in)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSONSuccessCreated(w, "Book created successfully", created)
}

// @Summary List books
// @Tags books
// @Produce json
// @Param filter query string false "Filter by genre"
// @Param sortBy query string false "Sort field" default(createdAt)
// @Param sort query string false "asc or desc" default(desc)
// @Param limit query int false "Max results" default(10)
// @Success 200 {object} httpx.SuccessResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	books, err := h.svc.List(r.Context(), ListParams{
		Filter: q.Get("filter"),
		SortBy: q.Get("sortBy"),
		Sort:   q.Get("sort"),
		Limit:  limit,
	})
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	if books == nil {
		books = []Book{}
	}
	httpx.JSONSuccess(w, "Books retrieved successfully", books)
}

// @Summary Get book by id
// @Tags books
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSONSuccess(w, "Book retrieved successfully", b)
}

// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} httpx.SuccessResponse
// @Router /books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in UpdateInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Error(r, w, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSONSuccess(w, "Book updated successfully", updated)
}

// @Summary Delete book
// @Tags books
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} httpx.SuccessResponse
// @Router /books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSONSuccess(w, "Book deleted successfully", deleted)
}
