package models

// Category is a named grouping of podcasts. Names are a lookup key but are
// not unique at the storage level.
type Category struct {
	Base
	CategoryName string    `json:"categoryName" gorm:"index;not null"`
	Slug         string    `json:"slug" gorm:"index"`
	Podcasts     []Podcast `json:"podcasts,omitempty" gorm:"foreignKey:CategoryID"`
}
