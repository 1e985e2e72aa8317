package stats

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"libraryapi/internal/testutil"
)

func newTestHandler(t *testing.T) (*HTTPHandler, *MockRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := NewMockRepository(ctrl)
	return NewHTTPHandler(NewService(mockRepo)), mockRepo
}

func TestHTTPHandler_Summary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().Summary(gomock.Any()).Return(Summary{
			TotalBorrowedQuantity: 12,
			TotalBorrowRecords:    4,
			TotalBooks:            3,
			TotalCopies:           40,
		}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stats", nil)

		handler.Summary(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "Analytics summary", resp.Body["message"])

		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, float64(12), data["totalBorrowedQuantity"])
		assert.Equal(t, float64(4), data["totalBorrowRecords"])
		assert.Equal(t, float64(3), data["totalBooks"])
		assert.Equal(t, float64(40), data["totalCopies"])
	})

	t.Run("zeros when nothing recorded", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().Summary(gomock.Any()).Return(Summary{}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stats", nil)

		handler.Summary(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)

		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, float64(0), data["totalBorrowedQuantity"])
		assert.Equal(t, float64(0), data["totalCopies"])
	})

	t.Run("repository failure", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().Summary(gomock.Any()).Return(Summary{}, assert.AnError)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/stats", nil)

		handler.Summary(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}
