package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/Eursukkul/meetapp-service/internal/middleware"
	"github.com/Eursukkul/meetapp-service/internal/models"
	"github.com/Eursukkul/meetapp-service/internal/service"
	"github.com/labstack/echo/v4"
)

// --- Mock MeetappService ---

type mockMeetappService struct {
	createFn func(ctx context.Context, userID uint, in service.MeetappInput) (*models.Meetapp, error)
	updateFn func(ctx context.Context, userID, id uint, in service.MeetappInput) (*models.Meetapp, error)
	deleteFn func(ctx context.Context, userID, id uint) error
	listFn   func(ctx context.Context, userID uint) ([]models.Meetapp, error)
	dayFn    func(ctx context.Context, day time.Time, page int) ([]models.Meetapp, error)
}

func (m *mockMeetappService) CreateMeetapp(ctx context.Context, userID uint, in service.MeetappInput) (*models.Meetapp, error) {
	return m.createFn(ctx, userID, in)
}
func (m *mockMeetappService) UpdateMeetapp(ctx context.Context, userID, id uint, in service.MeetappInput) (*models.Meetapp, error) {
	return m.updateFn(ctx, userID, id, in)
}
func (m *mockMeetappService) DeleteMeetapp(ctx context.Context, userID, id uint) error {
	return m.deleteFn(ctx, userID, id)
}
func (m *mockMeetappService) ListOrganized(ctx context.Context, userID uint) ([]models.Meetapp, error) {
	return m.listFn(ctx, userID)
}
func (m *mockMeetappService) ListByDay(ctx context.Context, day time.Time, page int) ([]models.Meetapp, error) {
	return m.dayFn(ctx, day, page)
}

// --- Mock SubscriptionService ---

type mockSubscriptionService struct {
	subscribeFn func(ctx context.Context, userID, meetappID uint) (*models.Subscription, error)
	listFn      func(ctx context.Context, userID uint) ([]models.Subscription, error)
}

func (m *mockSubscriptionService) Subscribe(ctx context.Context, userID, meetappID uint) (*models.Subscription, error) {
	return m.subscribeFn(ctx, userID, meetappID)
}
func (m *mockSubscriptionService) ListUpcoming(ctx context.Context, userID uint) ([]models.Subscription, error) {
	return m.listFn(ctx, userID)
}

// --- Mock UserService ---

type mockUserService struct {
	registerFn func(ctx context.Context, name, email, password string) (*models.User, error)
	updateFn   func(ctx context.Context, userID uint, in service.UserUpdate) (*models.User, error)
	sessionFn  func(ctx context.Context, email, password string) (*models.User, string, error)
}

func (m *mockUserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	return m.registerFn(ctx, name, email, password)
}
func (m *mockUserService) UpdateUser(ctx context.Context, userID uint, in service.UserUpdate) (*models.User, error) {
	return m.updateFn(ctx, userID, in)
}
func (m *mockUserService) CreateSession(ctx context.Context, email, password string) (*models.User, string, error) {
	return m.sessionFn(ctx, email, password)
}

// --- Mock FileService ---

type mockFileService struct {
	storeFn func(ctx context.Context, name string, content io.Reader) (*models.File, error)
}

func (m *mockFileService) StoreFile(ctx context.Context, name string, content io.Reader) (*models.File, error) {
	return m.storeFn(ctx, name, content)
}

// newJSONContext builds an echo context for a JSON request made by userID.
func newJSONContext(method, target, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		middleware.SetUserID(c, userID)
	}
	return c, rec
}

func httpCode(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}

func httpMessage(err error) string {
	if he, ok := err.(*echo.HTTPError); ok {
		if m, ok := he.Message.(string); ok {
			return m
		}
	}
	return ""
}
