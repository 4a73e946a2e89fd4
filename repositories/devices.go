package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"blogapi/models"
)

type DeviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

// Register stores an FCM token, refreshing updated_at when it is already
// known.
func (r *DeviceRepository) Register(ctx context.Context, token string) error {
	device := models.DeviceToken{Token: token}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.Assignments(map[string]any{"updated_at": gorm.Expr("CURRENT_TIMESTAMP")}),
		}).
		Create(&device).Error
	if err != nil {
		return fmt.Errorf("registering device token: %w", err)
	}
	return nil
}

func (r *DeviceRepository) Tokens(ctx context.Context) ([]string, error) {
	var tokens []string
	err := r.db.WithContext(ctx).Model(&models.DeviceToken{}).Pluck("token", &tokens).Error
	if err != nil {
		return nil, fmt.Errorf("listing device tokens: %w", err)
	}
	return tokens, nil
}

func (r *DeviceRepository) Remove(ctx context.Context, token string) error {
	err := r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.DeviceToken{}).Error
	if err != nil {
		return fmt.Errorf("removing device token: %w", err)
	}
	return nil
}
