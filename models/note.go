package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Note struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	Content    string     `gorm:"not null" json:"content"`
	Images     StringList `gorm:"type:text" json:"images"`
	ViewCount  int        `gorm:"not null;default:0" json:"viewCount"`
	LikeCount  int        `gorm:"not null;default:0" json:"likeCount"`
	ShareCount int        `gorm:"not null;default:0" json:"shareCount"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
