package borrow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/apperr"
)

const testBookID = "550e8400-e29b-41d4-a716-446655440000"

func intPtr(n int) *int { return &n }

func validCreateInput() CreateInput {
	return CreateInput{
		Book:     testBookID,
		Quantity: intPtr(2),
		DueDate:  "2025-01-01",
	}
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec *Record) error {
				assert.Equal(t, testBookID, rec.BookID)
				assert.Equal(t, 2, rec.Quantity)
				assert.Equal(t, 2025, rec.DueDate.Year())
				rec.ID = "borrow-id"
				rec.CreatedAt = time.Now()
				rec.UpdatedAt = rec.CreatedAt
				return nil
			})

		rec, err := svc.Create(context.Background(), validCreateInput())
		require.NoError(t, err)
		assert.Equal(t, "borrow-id", rec.ID)
	})

	t.Run("accepts RFC3339 due dates", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		in := validCreateInput()
		in.DueDate = "2025-06-15T10:30:00Z"
		_, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
	})

	t.Run("zero quantity is rejected before the repository", func(t *testing.T) {
		in := validCreateInput()
		in.Quantity = intPtr(0)

		_, err := svc.Create(context.Background(), in)

		var verr *apperr.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "quantity", verr.Fields[0].Path)
		assert.Equal(t, "too_small", verr.Fields[0].Kind)
	})

	t.Run("malformed book id is rejected", func(t *testing.T) {
		in := validCreateInput()
		in.Book = "42"

		_, err := svc.Create(context.Background(), in)

		var verr *apperr.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "book", verr.Fields[0].Path)
	})

	t.Run("unparseable due date is rejected", func(t *testing.T) {
		in := validCreateInput()
		in.DueDate = "next tuesday"

		_, err := svc.Create(context.Background(), in)

		var verr *apperr.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "dueDate", verr.Fields[0].Path)
		assert.Equal(t, "invalid_date", verr.Fields[0].Kind)
	})

	t.Run("insufficient stock propagates unchanged", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&apperr.InsufficientStockError{Available: 1, Requested: 2})

		_, err := svc.Create(context.Background(), validCreateInput())

		var stock *apperr.InsufficientStockError
		require.True(t, errors.As(err, &stock))
		assert.Equal(t, 1, stock.Available)
		assert.Equal(t, 2, stock.Requested)
	})

	t.Run("unknown book propagates unchanged", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&apperr.NotFoundError{Resource: "Book", ID: testBookID})

		_, err := svc.Create(context.Background(), validCreateInput())

		var nf *apperr.NotFoundError
		require.True(t, errors.As(err, &nf))
	})
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)

	t.Run("aggregated rows pass through", func(t *testing.T) {
		mockRepo.EXPECT().Summary(gomock.Any()).Return([]SummaryRow{
			{Book: BookRef{Title: "Dune", ISBN: "1111111111"}, TotalQuantity: 5},
		}, nil)

		rows, err := svc.Summary(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 5, rows[0].TotalQuantity)
	})

	t.Run("no borrows yields an empty slice", func(t *testing.T) {
		mockRepo.EXPECT().Summary(gomock.Any()).Return(nil, nil)

		rows, err := svc.Summary(context.Background())
		require.NoError(t, err)
		require.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}
