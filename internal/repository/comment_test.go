package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"vitrine/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ListByItem(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	item := createTestItem(t, db, alice, "discussed", models.VisibilityPublic, time.Hour)
	other := createTestItem(t, db, alice, "quiet", models.VisibilityPublic, time.Hour)

	for i, text := range []string{"oldest", "middle", "newest"} {
		comment := &models.Comment{
			ItemID:    item.ID,
			UserID:    alice.ID,
			UserName:  alice.Name,
			Text:      text,
			CreatedAt: time.Now().Add(-time.Duration(3-i) * time.Minute),
		}
		require.NoError(t, repo.Create(ctx, comment))
	}

	comments, err := repo.ListByItem(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "oldest", comments[0].Text)
	assert.Equal(t, "newest", comments[2].Text)

	empty, err := repo.ListByItem(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestCommentRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestCommentRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	item := createTestItem(t, db, alice, "discussed", models.VisibilityPublic, time.Hour)

	comment := &models.Comment{ItemID: item.ID, UserID: alice.ID, Text: "delete me"}
	require.NoError(t, repo.Create(ctx, comment))

	require.NoError(t, repo.Delete(ctx, comment.ID))

	_, err := repo.GetByID(ctx, comment.ID)
	require.Error(t, err)

	// deleting an already-deleted comment reports not found
	err = repo.Delete(ctx, comment.ID)
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
