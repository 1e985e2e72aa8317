package borrow

import (
	"net/http"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// @Summary Borrow a book
// @Tags borrow
// @Accept json
// @Produce json
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /borrow [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Error(r, w, err)
		return
	}

	rec, err := h.svc.Create(r.Context(), in)
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSONSuccessCreated(w, "Book borrowed successfully", rec)
}

// @Summary Borrowed books summary
// @Tags borrow
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /borrow [get]
func (h *HTTPHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSONSuccess(w, "Borrowed books summary retrieved successfully", summary)
}
