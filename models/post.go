package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Cover       string     `json:"cover"`
	Images      StringList `gorm:"type:text" json:"images"`
	Content     string     `gorm:"not null" json:"content"`
	ViewCount   int        `gorm:"not null;default:0" json:"viewCount"`
	LikeCount   int        `gorm:"not null;default:0" json:"likeCount"`
	ShareCount  int        `gorm:"not null;default:0" json:"shareCount"`
	Tags        []Tag      `gorm:"many2many:post_tags" json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type Tag struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Posts []Post `gorm:"many2many:post_tags" json:"-"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
