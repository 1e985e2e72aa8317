package book

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

func strPtr(s string) *string { return &s }

func validCreateInput() CreateInput {
	return CreateInput{
		Title:  "Dune",
		Author: "Herbert",
		Genre:  "SCIENCE",
		ISBN:   "1111111111",
		Copies: intPtr(5),
	}
}

func existingBook() Book {
	now := time.Now()
	return Book{
		ID:        testBookID,
		Title:     "Dune",
		Author:    "Herbert",
		Genre:     "SCIENCE",
		ISBN:      "1111111111",
		Copies:    5,
		Available: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)

	t.Run("derives available true when copies positive", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *Book) error {
				b.ID = testBookID
				b.CreatedAt = time.Now()
				b.UpdatedAt = b.CreatedAt
				return nil
			})

		created, err := svc.Create(context.Background(), validCreateInput())
		require.NoError(t, err)
		assert.Equal(t, testBookID, created.ID)
		assert.True(t, created.Available)
		assert.Equal(t, created.Copies > 0, created.Available)
	})

	t.Run("derives available false when copies zero", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		in := validCreateInput()
		in.Copies = intPtr(0)
		created, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
		assert.False(t, created.Available)
	})

	t.Run("invalid payload never reaches the repository", func(t *testing.T) {
		in := validCreateInput()
		in.Genre = "POETRY"
		in.Copies = nil

		_, err := svc.Create(context.Background(), in)

		var verr *apperr.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Fields, 2)
	})

	t.Run("duplicate isbn propagates", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&apperr.DuplicateKeyError{Field: "isbn", Value: "1111111111"})

		_, err := svc.Create(context.Background(), validCreateInput())

		var dup *apperr.DuplicateKeyError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "isbn", dup.Field)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *Book) error {
				assert.Equal(t, "Dune", b.Title)
				assert.Equal(t, "SCIENCE", b.Genre)
				assert.Equal(t, "1111111111", b.ISBN)
				return nil
			})

		in := validCreateInput()
		in.Title = "  Dune  "
		in.Genre = " SCIENCE "
		in.ISBN = " 1111111111 "
		_, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
	})

	t.Run("whitespace-only title fails required, repo untouched", func(t *testing.T) {
		in := validCreateInput()
		in.Title = "   "

		_, err := svc.Create(context.Background(), in)

		var verr *apperr.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "title", verr.Fields[0].Path)
		assert.Equal(t, "required", verr.Fields[0].Kind)
	})

	t.Run("padded isbn is judged by its trimmed length", func(t *testing.T) {
		in := validCreateInput()
		in.ISBN = "   1234567   "

		_, err := svc.Create(context.Background(), in)

		var verr *apperr.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "isbn", verr.Fields[0].Path)
		assert.Equal(t, "too_small", verr.Fields[0].Kind)
	})
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)

	t.Run("defaults", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any(), Query{OrderBy: "created_at", Desc: true, Limit: 10}).
			Return([]Book{}, nil)

		_, err := svc.List(context.Background(), ListParams{})
		require.NoError(t, err)
	})

	t.Run("genre filter with ascending copies sort", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any(), Query{Genre: "SCIENCE", OrderBy: "copies", Desc: false, Limit: 5}).
			Return([]Book{}, nil)

		_, err := svc.List(context.Background(), ListParams{
			Filter: "SCIENCE",
			SortBy: "copies",
			Sort:   "asc",
			Limit:  5,
		})
		require.NoError(t, err)
	})

	t.Run("unknown sort field falls back to creation time", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any(), Query{OrderBy: "created_at", Desc: true, Limit: 10}).
			Return([]Book{}, nil)

		_, err := svc.List(context.Background(), ListParams{SortBy: "price", Sort: "descending"})
		require.NoError(t, err)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any(), Query{OrderBy: "created_at", Desc: true, Limit: 100}).
			Return([]Book{}, nil)

		_, err := svc.List(context.Background(), ListParams{Limit: 5000})
		require.NoError(t, err)
	})
}

func TestService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), testBookID).Return(existingBook(), nil)

		b, err := svc.GetByID(context.Background(), testBookID)
		require.NoError(t, err)
		assert.Equal(t, "Dune", b.Title)
	})

	t.Run("malformed id is not found, repo untouched", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "not-a-uuid")

		var nf *apperr.NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "Book", nf.Resource)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)

	t.Run("merges partial fields and recomputes available", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), testBookID).Return(existingBook(), nil)
		mockRepo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *Book) error {
				assert.Equal(t, "Dune", b.Title)
				assert.Equal(t, 0, b.Copies)
				assert.False(t, b.Available)
				return nil
			})

		updated, err := svc.Update(context.Background(), testBookID, UpdateInput{Copies: intPtr(0)})
		require.NoError(t, err)
		assert.False(t, updated.Available)
	})

	t.Run("merged object is revalidated against the create schema", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), testBookID).Return(existingBook(), nil)

		_, err := svc.Update(context.Background(), testBookID, UpdateInput{Genre: strPtr("POETRY")})

		var verr *apperr.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "genre", verr.Fields[0].Path)
	})

	t.Run("whitespace-only title fails required", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), testBookID).Return(existingBook(), nil)

		_, err := svc.Update(context.Background(), testBookID, UpdateInput{Title: strPtr("  \t ")})

		var verr *apperr.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "title", verr.Fields[0].Path)
		assert.Equal(t, "required", verr.Fields[0].Kind)
	})

	t.Run("padded genre is trimmed before the enum check", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), testBookID).Return(existingBook(), nil)
		mockRepo.EXPECT().Replace(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *Book) error {
				assert.Equal(t, "HISTORY", b.Genre)
				return nil
			})

		updated, err := svc.Update(context.Background(), testBookID, UpdateInput{Genre: strPtr(" HISTORY ")})
		require.NoError(t, err)
		assert.Equal(t, "HISTORY", updated.Genre)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), testBookID).
			Return(Book{}, &apperr.NotFoundError{Resource: "Book", ID: testBookID})

		_, err := svc.Update(context.Background(), testBookID, UpdateInput{Copies: intPtr(1)})

		var nf *apperr.NotFoundError
		require.True(t, errors.As(err, &nf))
	})

	t.Run("isbn collision on replace propagates", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(gomock.Any(), testBookID).Return(existingBook(), nil)
		mockRepo.EXPECT().Replace(gomock.Any(), gomock.Any()).
			Return(&apperr.DuplicateKeyError{Field: "isbn", Value: "2222222222"})

		_, err := svc.Update(context.Background(), testBookID, UpdateInput{ISBN: strPtr("2222222222")})

		var dup *apperr.DuplicateKeyError
		require.True(t, errors.As(err, &dup))
	})
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	svc := NewService(mockRepo)

	t.Run("returns the deleted snapshot", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), testBookID).Return(existingBook(), nil)

		deleted, err := svc.Delete(context.Background(), testBookID)
		require.NoError(t, err)
		assert.Equal(t, "1111111111", deleted.ISBN)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		_, err := svc.Delete(context.Background(), "42")

		var nf *apperr.NotFoundError
		require.True(t, errors.As(err, &nf))
	})
}
