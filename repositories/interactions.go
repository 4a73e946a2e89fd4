package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blogapi/models"
)

// InteractionRepository is the ledger for one interaction target. Post and
// note ledgers share the implementation and differ only in the record table
// and the counter table they touch.
type InteractionRepository struct {
	db          *gorm.DB
	recordTable string
	targetTable string
}

func NewPostInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db, recordTable: "post_interactions", targetTable: "posts"}
}

func NewNoteInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db, recordTable: "note_interactions", targetTable: "notes"}
}

var counterColumns = map[models.InteractionType]string{
	models.InteractionView:  "view_count",
	models.InteractionLike:  "like_count",
	models.InteractionShare: "share_count",
}

// Create applies one interaction to the ledger. VIEW and LIKE are recorded at
// most once per actor per target; a duplicate is a silent success. SHARE is
// recorded every time. UNLIKE removes the actor's newest LIKE record and
// decrements the like counter, or does nothing when no LIKE exists. Record
// and counter always change together in one transaction.
func (r *InteractionRepository) Create(ctx context.Context, rec *models.InteractionRecord) error {
	if rec.Type == models.InteractionUnlike {
		return r.removeLike(ctx, rec)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Table(r.recordTable).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(rec)
		if result.Error != nil {
			return fmt.Errorf("inserting %s record: %w", rec.Type, result.Error)
		}
		if result.RowsAffected == 0 {
			// Already recorded for this actor; nothing to count.
			return nil
		}
		return r.bumpCounter(tx, rec.TargetID, counterColumns[rec.Type], 1)
	})
}

func (r *InteractionRepository) removeLike(ctx context.Context, rec *models.InteractionRecord) error {
	var like models.InteractionRecord
	query := r.db.WithContext(ctx).Table(r.recordTable).
		Where("target_id = ? AND type = ?", rec.TargetID, models.InteractionLike)
	query = filterByActor(query, rec)

	err := query.Order("created_at DESC").First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No LIKE on record, so the counter stays untouched.
		return nil
	}
	if err != nil {
		return fmt.Errorf("looking up like record: %w", err)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Table(r.recordTable).Where("id = ?", like.ID).Delete(&models.InteractionRecord{})
		if result.Error != nil {
			return fmt.Errorf("deleting like record: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return r.bumpCounter(tx, rec.TargetID, "like_count", -1)
	})
}

func (r *InteractionRepository) bumpCounter(tx *gorm.DB, targetID, column string, delta int) error {
	result := tx.Table(r.targetTable).
		Where("id = ?", targetID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("updating %s: %w", column, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GuestInteractions returns the guest's records of one type for a target,
// newest first.
func (r *InteractionRepository) GuestInteractions(ctx context.Context, interactionType models.InteractionType, guestID, targetID string) ([]models.InteractionRecord, error) {
	records := []models.InteractionRecord{}
	err := r.db.WithContext(ctx).Table(r.recordTable).
		Where("target_id = ? AND type = ? AND guest_id = ?", targetID, interactionType, guestID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("fetching guest interactions: %w", err)
	}
	return records, nil
}

// UserInteractions returns the user's records of one type for a target,
// newest first.
func (r *InteractionRepository) UserInteractions(ctx context.Context, interactionType models.InteractionType, userID, targetID string) ([]models.InteractionRecord, error) {
	records := []models.InteractionRecord{}
	err := r.db.WithContext(ctx).Table(r.recordTable).
		Where("target_id = ? AND type = ? AND user_id = ?", targetID, interactionType, userID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("fetching user interactions: %w", err)
	}
	return records, nil
}

func filterByActor(query *gorm.DB, rec *models.InteractionRecord) *gorm.DB {
	if rec.Role == models.RoleUser {
		return query.Where("user_id = ?", rec.UserID)
	}
	return query.Where("guest_id = ?", rec.GuestID)
}
