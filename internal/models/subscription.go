package models

import "time"

type Subscription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_subscription_user_meetapp" json:"user_id"`
	MeetappID uint      `gorm:"not null;uniqueIndex:idx_subscription_user_meetapp;index" json:"meetapp_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Meetapp *Meetapp `gorm:"foreignKey:MeetappID;constraint:OnDelete:CASCADE" json:"meetapp,omitempty"`
}
