package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"blogapi/models"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("creating comment: %w", err)
	}
	return nil
}

// Update changes the comment content, only when the comment belongs to the
// given user.
func (r *CommentRepository) Update(ctx context.Context, id, userID, content string) error {
	result := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("content", content)
	if result.Error != nil {
		return fmt.Errorf("updating comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Comment{})
	if result.Error != nil {
		return fmt.Errorf("deleting comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
