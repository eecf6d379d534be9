package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Eursukkul/meetapp-service/internal/models"
	"github.com/Eursukkul/meetapp-service/internal/repository"
	"gorm.io/gorm"
)

// PageSize is the number of meetapps per page of the day listing.
const PageSize = 10

const maxPage = math.MaxInt / PageSize

var (
	ErrMeetappNotFound = errors.New("meetapp does not exist")
	ErrNotOrganizer    = errors.New("meetapp creator does not match user")
	ErrPastDate        = errors.New("past dates are not permitted")
	ErrInvalidBanner   = errors.New("invalid banner_id")
	ErrMeetappFinished = errors.New("meetapp already happened")
)

// MeetappInput carries the editable fields of a meetapp.
type MeetappInput struct {
	Name        string
	Description string
	Location    string
	Date        time.Time
	BannerID    *uint
}

type MeetappService interface {
	CreateMeetapp(ctx context.Context, userID uint, in MeetappInput) (*models.Meetapp, error)
	UpdateMeetapp(ctx context.Context, userID, id uint, in MeetappInput) (*models.Meetapp, error)
	DeleteMeetapp(ctx context.Context, userID, id uint) error
	ListOrganized(ctx context.Context, userID uint) ([]models.Meetapp, error)
	ListByDay(ctx context.Context, day time.Time, page int) ([]models.Meetapp, error)
}

type meetappService struct {
	meetappRepo repository.MeetappRepository
	fileRepo    repository.FileRepository
}

func NewMeetappService(meetappRepo repository.MeetappRepository, fileRepo repository.FileRepository) MeetappService {
	return &meetappService{meetappRepo: meetappRepo, fileRepo: fileRepo}
}

func (s *meetappService) CreateMeetapp(ctx context.Context, userID uint, in MeetappInput) (*models.Meetapp, error) {
	if startOfHour(in.Date).Before(time.Now()) {
		return nil, ErrPastDate
	}

	if err := s.checkBanner(ctx, in.BannerID); err != nil {
		return nil, err
	}

	meetapp := &models.Meetapp{
		Name:        in.Name,
		Description: in.Description,
		Location:    in.Location,
		Date:        in.Date,
		UserID:      userID,
		BannerID:    in.BannerID,
	}
	if err := s.meetappRepo.Create(ctx, meetapp); err != nil {
		return nil, fmt.Errorf("create meetapp: %w", err)
	}

	return meetapp, nil
}

func (s *meetappService) UpdateMeetapp(ctx context.Context, userID, id uint, in MeetappInput) (*models.Meetapp, error) {
	meetapp, err := s.findMeetapp(ctx, id)
	if err != nil {
		return nil, err
	}

	if meetapp.UserID != userID {
		return nil, ErrNotOrganizer
	}

	if meetapp.Past() {
		return nil, ErrMeetappFinished
	}

	if startOfHour(in.Date).Before(time.Now()) {
		return nil, ErrPastDate
	}

	bannerID := in.BannerID
	if bannerID == nil {
		bannerID = meetapp.BannerID
	}
	if err := s.checkBanner(ctx, bannerID); err != nil {
		return nil, err
	}

	meetapp.Name = in.Name
	meetapp.Description = in.Description
	meetapp.Location = in.Location
	meetapp.Date = in.Date
	meetapp.BannerID = bannerID

	if err := s.meetappRepo.Save(ctx, meetapp); err != nil {
		return nil, fmt.Errorf("update meetapp: %w", err)
	}

	return meetapp, nil
}

func (s *meetappService) DeleteMeetapp(ctx context.Context, userID, id uint) error {
	meetapp, err := s.findMeetapp(ctx, id)
	if err != nil {
		return err
	}

	if meetapp.UserID != userID {
		return ErrNotOrganizer
	}

	if meetapp.Past() {
		return ErrMeetappFinished
	}

	if err := s.meetappRepo.Delete(ctx, meetapp.ID); err != nil {
		return fmt.Errorf("delete meetapp: %w", err)
	}

	return nil
}

func (s *meetappService) ListOrganized(ctx context.Context, userID uint) ([]models.Meetapp, error) {
	return s.meetappRepo.FindByOrganizer(ctx, userID)
}

// ListByDay returns the given page of meetapps scheduled on the calendar day
// of day, in day's location.
func (s *meetappService) ListByDay(ctx context.Context, day time.Time, page int) ([]models.Meetapp, error) {
	if page < 1 {
		page = 1
	}
	// no offset that large can hold rows
	if page > maxPage {
		return []models.Meetapp{}, nil
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)

	return s.meetappRepo.FindBetween(ctx, start, end, (page-1)*PageSize, PageSize)
}

func (s *meetappService) findMeetapp(ctx context.Context, id uint) (*models.Meetapp, error) {
	meetapp, err := s.meetappRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetappNotFound
		}
		return nil, fmt.Errorf("find meetapp: %w", err)
	}
	return meetapp, nil
}

// checkBanner requires bannerID to reference a stored file.
func (s *meetappService) checkBanner(ctx context.Context, bannerID *uint) error {
	if bannerID == nil {
		return ErrInvalidBanner
	}
	if _, err := s.fileRepo.FindByID(ctx, *bannerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidBanner
		}
		return fmt.Errorf("find banner: %w", err)
	}
	return nil
}

func startOfHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}
