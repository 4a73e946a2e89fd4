package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"blogapi/models"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	return tags, nil
}

func (r *TagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return fmt.Errorf("creating tag: %w", err)
	}
	return nil
}

// FindOrCreateByNames resolves tag names to rows, creating missing ones.
func (r *TagRepository) FindOrCreateByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		err := r.db.WithContext(ctx).
			Where(models.Tag{Name: name}).
			FirstOrCreate(&tag).Error
		if err != nil {
			return nil, fmt.Errorf("resolving tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (r *TagRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Tag{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting tag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
