package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Eursukkul/meetapp-service/internal/dto"
	"github.com/Eursukkul/meetapp-service/internal/models"
	"github.com/Eursukkul/meetapp-service/internal/repository"
	"gorm.io/gorm"
)

// RoutingSubscriptionCreated is published after every new subscription.
const RoutingSubscriptionCreated = "subscription.created"

var (
	ErrInvalidMeetapp    = errors.New("invalid meetapp id")
	ErrOwnMeetapp        = errors.New("you can't subscribe to your own meetapp")
	ErrPastMeetapp       = errors.New("you can't subscribe to a past meetapp")
	ErrAlreadySubscribed = errors.New("you are already subscribed to this meetapp")
	ErrSlotConflict      = errors.New("you are already subscribed to a meetapp at this date/time")
)

// Publisher delivers a payload to the message broker.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

type SubscriptionService interface {
	Subscribe(ctx context.Context, userID, meetappID uint) (*models.Subscription, error)
	ListUpcoming(ctx context.Context, userID uint) ([]models.Subscription, error)
}

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	meetappRepo      repository.MeetappRepository
	userRepo         repository.UserRepository
	publisher        Publisher
}

// NewSubscriptionService wires the subscription rules. publisher may be nil,
// in which case organizers are not notified.
func NewSubscriptionService(
	subscriptionRepo repository.SubscriptionRepository,
	meetappRepo repository.MeetappRepository,
	userRepo repository.UserRepository,
	publisher Publisher,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		meetappRepo:      meetappRepo,
		userRepo:         userRepo,
		publisher:        publisher,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, userID, meetappID uint) (*models.Subscription, error) {
	// 1. Meetapp must exist
	meetapp, err := s.meetappRepo.FindByID(ctx, meetappID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidMeetapp
		}
		return nil, fmt.Errorf("find meetapp: %w", err)
	}

	// 2. Organizers can't subscribe to their own meetapp
	if meetapp.UserID == userID {
		return nil, ErrOwnMeetapp
	}

	// 3. Nor to one that already happened
	if meetapp.Past() {
		return nil, ErrPastMeetapp
	}

	// 4. One subscription per (user, meetapp)
	_, err = s.subscriptionRepo.FindByUserAndMeetapp(ctx, userID, meetappID)
	if err == nil {
		return nil, ErrAlreadySubscribed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check subscription: %w", err)
	}

	// 5. One meetapp per time slot
	_, err = s.subscriptionRepo.FindByUserAndDate(ctx, userID, meetapp.Date)
	if err == nil {
		return nil, ErrSlotConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check time slot: %w", err)
	}

	subscription := &models.Subscription{
		UserID:    userID,
		MeetappID: meetappID,
	}
	if err := s.subscriptionRepo.Create(ctx, subscription); err != nil {
		// lost the race against a concurrent request for the same pair
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	s.notifyOrganizer(ctx, meetapp, subscription)

	return subscription, nil
}

func (s *subscriptionService) ListUpcoming(ctx context.Context, userID uint) ([]models.Subscription, error) {
	return s.subscriptionRepo.FindUpcomingByUser(ctx, userID, time.Now())
}

// notifyOrganizer publishes subscription.created. Failures are logged only,
// the subscription itself is already stored.
func (s *subscriptionService) notifyOrganizer(ctx context.Context, meetapp *models.Meetapp, subscription *models.Subscription) {
	if s.publisher == nil {
		return
	}

	organizer, err := s.userRepo.FindByID(ctx, meetapp.UserID)
	if err != nil {
		log.Printf("[Subscription] organizer %d not loaded: %v", meetapp.UserID, err)
		return
	}
	subscriber, err := s.userRepo.FindByID(ctx, subscription.UserID)
	if err != nil {
		log.Printf("[Subscription] subscriber %d not loaded: %v", subscription.UserID, err)
		return
	}

	msg := dto.SubscriptionNotification{
		SubscriptionID: subscription.ID,
		Meetapp: dto.NotifiedMeetapp{
			ID:       meetapp.ID,
			Name:     meetapp.Name,
			Location: meetapp.Location,
			Date:     meetapp.Date,
		},
		Organizer:  dto.ToUserResponse(organizer),
		Subscriber: dto.ToUserResponse(subscriber),
		CreatedAt:  subscription.CreatedAt,
	}

	if err := s.publisher.Publish(RoutingSubscriptionCreated, msg); err != nil {
		log.Printf("[Subscription] publish %s for subscription %d: %v", RoutingSubscriptionCreated, subscription.ID, err)
	}
}
