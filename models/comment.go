package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	PostID    string    `gorm:"not null;index" json:"postId"`
	UserID    string    `gorm:"not null;index" json:"userId"`
	Content   string    `gorm:"not null" json:"content"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type Bookmark struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Role      Role      `gorm:"not null" json:"role"`
	PostID    string    `gorm:"not null;index" json:"postId"`
	GuestID   *string   `gorm:"index" json:"guestId,omitempty"`
	UserID    *string   `gorm:"index" json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
