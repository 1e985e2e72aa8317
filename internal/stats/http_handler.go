package stats

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

// @Summary Analytics summary
// @Tags stats
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /stats [get]
func (h *HTTPHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		httpx.Error(r, w, err)
		return
	}
	httpx.JSONSuccess(w, "Analytics summary", summary)
}
