// Package service implements the application's business rules on top of the
// repository layer: input validation, ownership checks, and pagination.
package service

import (
	"context"
	"math"
	"strings"

	"vitrine/internal/models"
	"vitrine/internal/repository"
)

type ItemService struct {
	itemRepo repository.ItemRepository
	userRepo repository.UserRepository
}

type CreateItemInput struct {
	UserID      uint
	Title       string
	Description string
	Img         string
	Visibility  string
}

type ListItemsInput struct {
	UserID  uint
	Page    int
	PerPage int
}

// ItemPage is one page of a visibility-filtered item listing.
type ItemPage struct {
	Items       []*models.Item `json:"items"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalItems  int64          `json:"totalItems"`
}

// UpdateItemInput carries the mutable item fields. Nil pointers leave the
// corresponding field untouched; only title, description, img and visibility
// may be overwritten — owner, comments and ratings are not assignable.
type UpdateItemInput struct {
	UserID      uint
	ItemID      uint
	Title       *string
	Description *string
	Img         *string
	Visibility  *string
}

type DeleteItemInput struct {
	UserID uint
	ItemID uint
}

func NewItemService(itemRepo repository.ItemRepository, userRepo repository.UserRepository) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		userRepo: userRepo,
	}
}

func (s *ItemService) CreateItem(ctx context.Context, in CreateItemInput) (*models.Item, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return nil, models.NewValidationError("Title and description are required")
	}

	visibility := in.Visibility
	if visibility == "" {
		visibility = models.VisibilityPrivate
	}
	if !models.IsValidVisibility(visibility) {
		return nil, models.NewValidationError("Visibility must be public or private")
	}

	// Should not fail for a valid token; guards against deleted accounts.
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		Title:       title,
		Description: description,
		Img:         in.Img,
		Visibility:  visibility,
		Ratings:     []float64{},
		UserID:      user.ID,
		CreatorName: user.Name,
		CreatorImg:  user.ProfileImg,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return s.itemRepo.GetByID(ctx, item.ID)
}

func (s *ItemService) ListItems(ctx context.Context, in ListItemsInput) (*ItemPage, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	perPage := in.PerPage
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	items, err := s.itemRepo.ListVisible(ctx, in.UserID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	total, err := s.itemRepo.CountVisible(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = []*models.Item{}
	}
	return &ItemPage{
		Items:       items,
		CurrentPage: page,
		TotalPages:  int(math.Ceil(float64(total) / float64(perPage))),
		TotalItems:  total,
	}, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, in UpdateItemInput) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}

	if item.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own items")
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		item.Title = title
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, models.NewValidationError("Description cannot be empty")
		}
		item.Description = description
	}
	if in.Img != nil {
		item.Img = *in.Img
	}
	if in.Visibility != nil {
		if !models.IsValidVisibility(*in.Visibility) {
			return nil, models.NewValidationError("Visibility must be public or private")
		}
		item.Visibility = *in.Visibility
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.itemRepo.GetByID(ctx, item.ID)
}

func (s *ItemService) DeleteItem(ctx context.Context, in DeleteItemInput) error {
	item, err := s.itemRepo.GetByID(ctx, in.ItemID)
	if err != nil {
		return err
	}

	if item.UserID != in.UserID {
		return models.NewForbiddenError("You can only delete your own items")
	}

	return s.itemRepo.Delete(ctx, in.ItemID)
}
