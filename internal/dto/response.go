package dto

import (
	"time"

	"github.com/Eursukkul/meetapp-service/internal/models"
)

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type FileResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name,omitempty"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

type MeetappResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
	Past        bool      `json:"past"`
	UserID      uint      `json:"user_id"`
	BannerID    *uint     `json:"banner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type MeetappUpdateResponse struct {
	Date        time.Time `json:"date"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
}

// MeetappDayResponse is the public listing shape: organizer and banner are
// reduced to their projections.
type MeetappDayResponse struct {
	ID          uint          `json:"id"`
	Date        time.Time     `json:"date"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	User        *UserResponse `json:"user"`
	Banner      *FileResponse `json:"banner"`
}

type SubscriptionResponse struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	MeetappID uint      `json:"meetapp_id"`
	CreatedAt time.Time `json:"created_at"`
}

type SubscribedMeetappResponse struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Date        time.Time     `json:"date"`
	Banner      *FileResponse `json:"banner"`
}

type SubscriptionListResponse struct {
	ID        uint                       `json:"id"`
	UserID    uint                       `json:"user_id"`
	MeetappID uint                       `json:"meetapp_id"`
	Meetapp   *SubscribedMeetappResponse `json:"meetapp"`
}

type SessionResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToFileResponse(f *models.File) FileResponse {
	return FileResponse{ID: f.ID, Name: f.Name, Path: f.Path, URL: f.URL}
}

func toBanner(f *models.File) *FileResponse {
	if f == nil {
		return nil
	}
	return &FileResponse{ID: f.ID, Path: f.Path, URL: f.URL}
}

func ToMeetappResponse(m *models.Meetapp) MeetappResponse {
	return MeetappResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Location:    m.Location,
		Date:        m.Date,
		Past:        m.Past(),
		UserID:      m.UserID,
		BannerID:    m.BannerID,
		CreatedAt:   m.CreatedAt,
	}
}

func ToMeetappUpdateResponse(m *models.Meetapp) MeetappUpdateResponse {
	return MeetappUpdateResponse{
		Date:        m.Date,
		Name:        m.Name,
		Description: m.Description,
		Location:    m.Location,
	}
}

func ToMeetappDayResponse(m *models.Meetapp) MeetappDayResponse {
	resp := MeetappDayResponse{
		ID:          m.ID,
		Date:        m.Date,
		Name:        m.Name,
		Description: m.Description,
		Location:    m.Location,
		Banner:      toBanner(m.Banner),
	}
	if m.User != nil {
		u := ToUserResponse(m.User)
		resp.User = &u
	}
	return resp
}

func ToSubscriptionResponse(s *models.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		MeetappID: s.MeetappID,
		CreatedAt: s.CreatedAt,
	}
}

func ToSubscriptionListResponse(s *models.Subscription) SubscriptionListResponse {
	resp := SubscriptionListResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		MeetappID: s.MeetappID,
	}
	if m := s.Meetapp; m != nil {
		resp.Meetapp = &SubscribedMeetappResponse{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Location:    m.Location,
			Date:        m.Date,
			Banner:      toBanner(m.Banner),
		}
	}
	return resp
}
