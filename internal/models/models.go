package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the identifier and timestamps shared by every table.
// IDs are UUIDs generated on insert so every driver behaves the same.
type Base struct {
	ID        uuid.UUID `json:"_id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a new UUID when none was set
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// All returns every model, in migration order
func All() []any {
	return []any{
		&User{},
		&Category{},
		&Podcast{},
	}
}
