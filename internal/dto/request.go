package dto

type CreateMeetappRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	BannerID    *uint  `json:"banner_id"`
}

type UpdateMeetappRequest struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	BannerID    *uint  `json:"banner_id"`
}

type CreateSubscriptionRequest struct {
	MeetappID uint `json:"meetapp_id"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	OldPassword     string `json:"old_password"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type SessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
