package models

import "time"

// DriverLog is a flat shift record, queried by date.
type DriverLog struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Date string `gorm:"index" json:"date"`
	Name string `json:"name"`
}

// Announcement is a portal-wide message, listed newest first.
type Announcement struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// LocationPhoto is a department-tagged site photo record.
type LocationPhoto struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Department string  `gorm:"index" json:"department"`
	Title      string  `json:"title"`
	ImageURL   *string `json:"image_url"`
}
