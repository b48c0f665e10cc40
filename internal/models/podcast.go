package models

import "github.com/google/uuid"

// Podcast is a user-submitted audio episode record.
// CategoryID and UserID are the only stored references; the category's and
// the owner's podcast collections are derived from them.
type Podcast struct {
	Base
	Title           string    `json:"title" gorm:"uniqueIndex;not null"`
	Description     string    `json:"description" gorm:"type:text;not null"`
	CategoryID      uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	Category        *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	UserID          uuid.UUID `json:"user" gorm:"type:uuid;not null;index"`
	FrontImage      string    `json:"frontImage" gorm:"not null"`
	AudioFile       string    `json:"audioFile" gorm:"not null"`
	AudioMimeType   string    `json:"audioMimeType,omitempty"`
	AudioSize       int64     `json:"audioSize,omitempty"`
	DurationSeconds int       `json:"durationSeconds,omitempty"`
}

// OwnedBy reports whether userID created the podcast
func (p *Podcast) OwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}
