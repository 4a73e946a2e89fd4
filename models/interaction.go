package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleGuest Role = "GUEST"
	RoleUser  Role = "USER"
)

type InteractionType string

const (
	InteractionView   InteractionType = "VIEW"
	InteractionLike   InteractionType = "LIKE"
	InteractionUnlike InteractionType = "UNLIKE"
	InteractionShare  InteractionType = "SHARE"
)

func (t InteractionType) Valid() bool {
	switch t {
	case InteractionView, InteractionLike, InteractionUnlike, InteractionShare:
		return true
	}
	return false
}

// InteractionRecord is the ledger row behind both post_interactions and
// note_interactions. The table is picked per repository via Table(), so the
// struct itself carries no TableName.
type InteractionRecord struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	Role      Role            `gorm:"not null" json:"role"`
	Type      InteractionType `gorm:"not null;index" json:"type"`
	TargetID  string          `gorm:"not null;index" json:"targetId"`
	GuestID   *string         `gorm:"index" json:"guestId,omitempty"`
	UserID    *string         `gorm:"index" json:"userId,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (r *InteractionRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
