package service

import (
	"context"
	"errors"
	"testing"

	"vitrine/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByItemFn func(context.Context, uint) ([]*models.Comment, error)
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByItem(ctx context.Context, itemID uint) ([]*models.Comment, error) {
	return s.listByItemFn(ctx, itemID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByItemFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

func TestCommentService_AddComment_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopItemRepo(), noopUserRepo())
	ctx := context.Background()

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		_, err := svc.AddComment(ctx, AddCommentInput{UserID: 1, ItemID: 1})
		assertValidationError(t, err)
	})

	t.Run("whitespace-only text", func(t *testing.T) {
		t.Parallel()
		_, err := svc.AddComment(ctx, AddCommentInput{UserID: 1, ItemID: 1, Text: "  \n "})
		assertValidationError(t, err)
	})

	t.Run("missing item propagates not found", func(t *testing.T) {
		t.Parallel()
		itemRepo := noopItemRepo()
		itemRepo.getByIDFn = func(context.Context, uint) (*models.Item, error) {
			return nil, models.NewNotFoundError("Item")
		}
		svc2 := NewCommentService(noopCommentRepo(), itemRepo, noopUserRepo())
		_, err := svc2.AddComment(ctx, AddCommentInput{UserID: 1, ItemID: 99, Text: "hi"})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestCommentService_AddComment_SnapshotsAuthor(t *testing.T) {
	t.Parallel()

	var created *models.Comment
	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 42
		created = c
		return nil
	}
	commentRepo.listByItemFn = func(_ context.Context, _ uint) ([]*models.Comment, error) {
		return []*models.Comment{created}, nil
	}
	itemRepo := noopItemRepo()
	itemRepo.getByIDFn = func(_ context.Context, id uint) (*models.Item, error) {
		return &models.Item{ID: id}, nil
	}
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return &models.User{ID: 3, Name: "Bob", ProfileImg: "https://example.com/b.png"}, nil
	}

	svc := NewCommentService(commentRepo, itemRepo, userRepo)
	comments, err := svc.AddComment(context.Background(), AddCommentInput{
		UserID: 3, ItemID: 5, Text: "  nice one  ",
	})
	require.NoError(t, err)
	require.Len(t, comments, 1)

	assert.Equal(t, "nice one", created.Text, "text should be trimmed")
	assert.Equal(t, "Bob", created.UserName)
	assert.Equal(t, "https://example.com/b.png", created.UserImg)
	assert.Equal(t, uint(5), created.ItemID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCommentService_DeleteComment(t *testing.T) {
	t.Parallel()

	t.Run("author can delete", func(t *testing.T) {
		t.Parallel()
		deleted := false
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, ItemID: 5, UserID: 3}, nil
		}
		commentRepo.deleteFn = func(_ context.Context, _ uint) error {
			deleted = true
			return nil
		}
		commentRepo.listByItemFn = func(_ context.Context, _ uint) ([]*models.Comment, error) {
			return []*models.Comment{}, nil
		}

		svc := NewCommentService(commentRepo, noopItemRepo(), noopUserRepo())
		comments, err := svc.DeleteComment(context.Background(), DeleteCommentInput{
			UserID: 3, ItemID: 5, CommentID: 42,
		})
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Empty(t, comments)
	})

	t.Run("item owner cannot delete another author's comment", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, ItemID: 5, UserID: 3}, nil
		}
		itemRepo := noopItemRepo()
		itemRepo.getByIDFn = func(_ context.Context, id uint) (*models.Item, error) {
			// caller owns the item but not the comment
			return &models.Item{ID: id, UserID: 1}, nil
		}

		svc := NewCommentService(commentRepo, itemRepo, noopUserRepo())
		_, err := svc.DeleteComment(context.Background(), DeleteCommentInput{
			UserID: 1, ItemID: 5, CommentID: 42,
		})
		assertForbiddenError(t, err)
	})

	t.Run("comment under a different item is not found", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, ItemID: 8, UserID: 3}, nil
		}

		svc := NewCommentService(commentRepo, noopItemRepo(), noopUserRepo())
		_, err := svc.DeleteComment(context.Background(), DeleteCommentInput{
			UserID: 3, ItemID: 5, CommentID: 42,
		})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})

	t.Run("missing item propagates not found", func(t *testing.T) {
		t.Parallel()
		itemRepo := noopItemRepo()
		itemRepo.getByIDFn = func(context.Context, uint) (*models.Item, error) {
			return nil, models.NewNotFoundError("Item")
		}
		svc := NewCommentService(noopCommentRepo(), itemRepo, noopUserRepo())
		_, err := svc.DeleteComment(context.Background(), DeleteCommentInput{
			UserID: 3, ItemID: 99, CommentID: 42,
		})
		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}
