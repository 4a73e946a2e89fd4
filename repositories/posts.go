package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blogapi/models"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// List returns posts newest first, optionally filtered by tag id.
func (r *PostRepository) List(ctx context.Context, take, skip int, tagID string) ([]models.Post, error) {
	query := r.db.WithContext(ctx).Model(&models.Post{}).Preload("Tags")
	if tagID != "" {
		query = query.
			Joins("JOIN post_tags ON post_tags.post_id = posts.id").
			Where("post_tags.tag_id = ?", tagID)
	}

	var posts []models.Post
	err := query.Order("created_at DESC").Limit(take).Offset(skip).Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) Get(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Preload("Tags").First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching post: %w", err)
	}
	return &post, nil
}

// Search matches the query against title, description and content.
func (r *PostRepository) Search(ctx context.Context, query string) ([]models.Post, error) {
	pattern := "%" + query + "%"
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("Tags").
		Where("title LIKE ? OR description LIKE ? OR content LIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("searching posts: %w", err)
	}
	return posts, nil
}

// ByTagName returns posts carrying the named tag, newest first.
func (r *PostRepository) ByTagName(ctx context.Context, tag string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("Tags").
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("tags.name = ?", tag).
		Order("posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("fetching posts by tag: %w", err)
	}
	return posts, nil
}

// Related returns other posts sharing at least one of the given tag ids.
func (r *PostRepository) Related(ctx context.Context, postID string, tagIDs []string, take int) ([]models.Post, error) {
	if len(tagIDs) == 0 {
		return []models.Post{}, nil
	}
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("Tags").
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id IN ?", tagIDs).
		Where("posts.id <> ?", postID).
		Group("posts.id").
		Order("posts.created_at DESC").
		Limit(take).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("fetching related posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("creating post: %w", err)
	}
	return nil
}

// Update saves the post's scalar fields and replaces its tag associations.
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Post{ID: post.ID}).
			Select("title", "description", "cover", "images", "content", "updated_at").
			Updates(post)
		if result.Error != nil {
			return fmt.Errorf("updating post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Model(&models.Post{ID: post.ID}).Association("Tags").Replace(post.Tags); err != nil {
			return fmt.Errorf("replacing post tags: %w", err)
		}
		return nil
	})
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
