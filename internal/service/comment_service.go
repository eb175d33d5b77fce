package service

import (
	"context"
	"strings"
	"time"

	"vitrine/internal/models"
	"vitrine/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
}

type AddCommentInput struct {
	UserID uint
	ItemID uint
	Text   string
}

type DeleteCommentInput struct {
	UserID    uint
	ItemID    uint
	CommentID uint
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
	}
}

// AddComment appends a comment to an item, snapshotting the author's name and
// image, and returns the item's refreshed comment list.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) ([]*models.Comment, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ItemID:    item.ID,
		UserID:    user.ID,
		UserName:  user.Name,
		UserImg:   user.ProfileImg,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByItem(ctx, item.ID)
}

// DeleteComment removes a comment by its author. Item ownership does not
// grant deletion of other users' comments.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) ([]*models.Comment, error) {
	if _, err := s.itemRepo.GetByID(ctx, in.ItemID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.ItemID != in.ItemID {
		return nil, models.NewNotFoundError("Comment")
	}

	if comment.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only delete your own comments")
	}

	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByItem(ctx, in.ItemID)
}
