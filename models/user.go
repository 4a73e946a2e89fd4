package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	Password   string    `json:"-"`
	Provider   string    `json:"provider"`
	ProviderID string    `json:"providerId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Guest records a first visit per client address, used by the statistics
// endpoint for monthly distributions.
type Guest struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	IPAddress string    `gorm:"uniqueIndex;not null" json:"ipAddress"`
	CreatedAt time.Time `json:"createdAt"`
}

func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// DeviceToken is an FCM registration token for the blog owner's devices.
type DeviceToken struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (d *DeviceToken) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
