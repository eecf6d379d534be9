package models

import "time"

// File is an uploaded banner image. Path is the stored name under the
// upload directory, URL the public address it is served from.
type File struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Path      string    `gorm:"uniqueIndex;not null" json:"path"`
	URL       string    `gorm:"not null" json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
