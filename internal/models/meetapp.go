package models

import "time"

type Meetapp struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Location    string    `gorm:"not null" json:"location"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	BannerID    *uint     `json:"banner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User   *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Banner *File `gorm:"foreignKey:BannerID" json:"banner,omitempty"`
}

// PastAt reports whether the meetapp already started at the given instant.
func (m *Meetapp) PastAt(now time.Time) bool {
	return !m.Date.After(now)
}

func (m *Meetapp) Past() bool {
	return m.PastAt(time.Now())
}
