package repository

import (
	"context"
	"errors"

	"vitrine/internal/cache"
	"vitrine/internal/models"
	"vitrine/internal/observability"

	"gorm.io/gorm"
)

// ItemRepository defines the interface for item data operations.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uint) (*models.Item, error)
	ListVisible(ctx context.Context, callerID uint, limit, offset int) ([]*models.Item, error)
	CountVisible(ctx context.Context, callerID uint) (int64, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uint) error
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	key := cache.ItemKey(id)

	err := cache.Aside(ctx, key, &item, cache.ItemTTL, func() error {
		if err := r.applyItemDetails(r.db.WithContext(ctx)).First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Item")
			}
			return models.NewInternalError(err)
		}
		// an item without comments still serializes as an empty array
		if item.Comments == nil {
			item.Comments = []models.Comment{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// visibleScope restricts the query to items readable by callerID:
// public items plus the caller's own private items.
func (r *itemRepository) visibleScope(db *gorm.DB, callerID uint) *gorm.DB {
	return db.Where("visibility = ? OR user_id = ?", models.VisibilityPublic, callerID)
}

func (r *itemRepository) ListVisible(ctx context.Context, callerID uint, limit, offset int) ([]*models.Item, error) {
	defer observability.TrackQuery("list", "items")()

	var items []*models.Item
	err := r.visibleScope(r.applyItemDetails(r.db.WithContext(ctx)), callerID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *itemRepository) CountVisible(ctx context.Context, callerID uint) (int64, error) {
	defer observability.TrackQuery("count", "items")()

	var count int64
	err := r.visibleScope(r.db.WithContext(ctx).Model(&models.Item{}), callerID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// applyItemDetails preloads the creator record and the ordered comment list.
func (r *itemRepository) applyItemDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		})
}

func (r *itemRepository) Update(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Omit("User", "Comments").Save(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateItem(ctx, item.ID)
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Select("Comments").Delete(&models.Item{ID: id}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateItem(ctx, id)
	return nil
}
