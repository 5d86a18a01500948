package models

// Course is a learning-content entry. The two submission paths populate
// different slots: file-backed courses carry FileURL, manually-authored
// ones carry Content and optionally MediaURL. Courses are immutable once
// created.
type Course struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Title      string  `json:"title"`
	Department string  `json:"department"` // visibility partition key; empty means universally visible
	Content    string  `json:"content"`
	FileURL    *string `json:"file_url"`
	MediaURL   *string `json:"media_url"`
}
