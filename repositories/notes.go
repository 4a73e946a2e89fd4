package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blogapi/models"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) List(ctx context.Context, take int) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(take).Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return notes, nil
}

func (r *NoteRepository) Get(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	err := r.db.WithContext(ctx).First(&note, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching note: %w", err)
	}
	return &note, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("creating note: %w", err)
	}
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Note{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
