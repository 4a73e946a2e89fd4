package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"blogapi/models"
)

type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark *models.Bookmark) error {
	if err := r.db.WithContext(ctx).Create(bookmark).Error; err != nil {
		return fmt.Errorf("creating bookmark: %w", err)
	}
	return nil
}

func (r *BookmarkRepository) ListByGuest(ctx context.Context, guestID string) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, fmt.Errorf("listing guest bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (r *BookmarkRepository) ListByUser(ctx context.Context, userID string) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, fmt.Errorf("listing user bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (r *BookmarkRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Bookmark{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting bookmark: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
