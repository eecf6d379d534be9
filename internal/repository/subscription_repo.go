package repository

import (
	"context"
	"time"

	"github.com/Eursukkul/meetapp-service/internal/models"
	"gorm.io/gorm"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *models.Subscription) error
	FindByUserAndMeetapp(ctx context.Context, userID, meetappID uint) (*models.Subscription, error)
	FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*models.Subscription, error)
	FindUpcomingByUser(ctx context.Context, userID uint, now time.Time) ([]models.Subscription, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, subscription *models.Subscription) error {
	return r.db.WithContext(ctx).Omit("User", "Meetapp").Create(subscription).Error
}

func (r *subscriptionRepository) FindByUserAndMeetapp(ctx context.Context, userID, meetappID uint) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND meetapp_id = ?", userID, meetappID).
		First(&subscription).Error
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

// FindByUserAndDate returns any subscription of the user whose meetapp is
// scheduled at exactly the given date.
func (r *subscriptionRepository) FindByUserAndDate(ctx context.Context, userID uint, date time.Time) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.WithContext(ctx).
		Joins("JOIN meetapps ON meetapps.id = subscriptions.meetapp_id").
		Where("subscriptions.user_id = ? AND meetapps.date = ?", userID, date).
		First(&subscription).Error
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (r *subscriptionRepository) FindUpcomingByUser(ctx context.Context, userID uint, now time.Time) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	err := r.db.WithContext(ctx).
		Joins("JOIN meetapps ON meetapps.id = subscriptions.meetapp_id AND meetapps.date > ?", now).
		Preload("Meetapp.Banner").
		Where("subscriptions.user_id = ?", userID).
		Order("meetapps.date ASC, subscriptions.id ASC").
		Find(&subscriptions).Error
	if err != nil {
		return nil, err
	}
	return subscriptions, nil
}
