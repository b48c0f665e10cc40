package models

// User represents a registered account
type User struct {
	Base
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Podcasts     []Podcast `json:"podcasts,omitempty" gorm:"foreignKey:UserID"`
}
