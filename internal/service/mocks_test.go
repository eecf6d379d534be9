package service

import (
	"context"
	"time"

	"github.com/Eursukkul/meetapp-service/internal/models"
	"gorm.io/gorm"
)

// --- Mock MeetappRepository ---

type mockMeetappRepo struct {
	createFn      func(ctx context.Context, m *models.Meetapp) error
	findByIDFn    func(ctx context.Context, id uint) (*models.Meetapp, error)
	findByOrgFn   func(ctx context.Context, userID uint) ([]models.Meetapp, error)
	findBetweenFn func(ctx context.Context, start, end time.Time, offset, limit int) ([]models.Meetapp, error)
	saveFn        func(ctx context.Context, m *models.Meetapp) error
	deleteFn      func(ctx context.Context, id uint) error
}

func (m *mockMeetappRepo) Create(ctx context.Context, meetapp *models.Meetapp) error {
	return m.createFn(ctx, meetapp)
}
func (m *mockMeetappRepo) FindByID(ctx context.Context, id uint) (*models.Meetapp, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockMeetappRepo) FindByOrganizer(ctx context.Context, userID uint) ([]models.Meetapp, error) {
	return m.findByOrgFn(ctx, userID)
}
func (m *mockMeetappRepo) FindBetween(ctx context.Context, start, end time.Time, offset, limit int) ([]models.Meetapp, error) {
	return m.findBetweenFn(ctx, start, end, offset, limit)
}
func (m *mockMeetappRepo) Save(ctx context.Context, meetapp *models.Meetapp) error {
	return m.saveFn(ctx, meetapp)
}
func (m *mockMeetappRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock FileRepository ---

type mockFileRepo struct {
	createFn   func(ctx context.Context, f *models.File) error
	findByIDFn func(ctx context.Context, id uint) (*models.File, error)
}

func (m *mockFileRepo) Create(ctx context.Context, f *models.File) error {
	return m.createFn(ctx, f)
}
func (m *mockFileRepo) FindByID(ctx context.Context, id uint) (*models.File, error) {
	return m.findByIDFn(ctx, id)
}

// existingFiles answers FindByID for the given ids only.
func existingFiles(ids ...uint) *mockFileRepo {
	return &mockFileRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.File, error) {
			for _, known := range ids {
				if known == id {
					return &models.File{ID: id, Path: "banner.png"}, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

// --- Mock SubscriptionRepository ---

type mockSubscriptionRepo struct {
	createFn       func(ctx context.Context, s *models.Subscription) error
	findByPairFn   func(ctx context.Context, userID, meetappID uint) (*models.Subscription, error)
	findByDateFn   func(ctx context.Context, userID uint, date time.Time) (*models.Subscription, error)
	findUpcomingFn func(ctx context.Context, userID uint, now time.Time) ([]models.Subscription, error)
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, s *models.Subscription) error {
	return m.createFn(ctx, s)
}
func (m *mockSubscriptionRepo) FindByUserAndMeetapp(ctx context.Context, userID, meetappID uint) (*models.Subscription, error) {
	return m.findByPairFn(ctx, userID, meetappID)
}
func (m *mockSubscriptionRepo) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*models.Subscription, error) {
	return m.findByDateFn(ctx, userID, date)
}
func (m *mockSubscriptionRepo) FindUpcomingByUser(ctx context.Context, userID uint, now time.Time) ([]models.Subscription, error) {
	return m.findUpcomingFn(ctx, userID, now)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn      func(ctx context.Context, u *models.User) error
	findByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	findByEmailFn func(ctx context.Context, email string) (*models.User, error)
	saveFn        func(ctx context.Context, u *models.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	return m.createFn(ctx, u)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockUserRepo) Save(ctx context.Context, u *models.User) error {
	return m.saveFn(ctx, u)
}

// --- Mock Publisher ---

type published struct {
	routingKey string
	payload    any
}

type mockPublisher struct {
	messages []published
	err      error
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	m.messages = append(m.messages, published{routingKey: routingKey, payload: payload})
	return m.err
}
