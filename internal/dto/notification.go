package dto

import "time"

// SubscriptionNotification is the message body published on
// subscription.created and consumed by the organizer mailer.
type SubscriptionNotification struct {
	SubscriptionID uint            `json:"subscription_id"`
	Meetapp        NotifiedMeetapp `json:"meetapp"`
	Organizer      UserResponse    `json:"organizer"`
	Subscriber     UserResponse    `json:"subscriber"`
	CreatedAt      time.Time       `json:"created_at"`
}

type NotifiedMeetapp struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Date     time.Time `json:"date"`
}
