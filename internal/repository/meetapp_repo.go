package repository

import (
	"context"
	"time"

	"github.com/Eursukkul/meetapp-service/internal/models"
	"gorm.io/gorm"
)

type MeetappRepository interface {
	Create(ctx context.Context, meetapp *models.Meetapp) error
	FindByID(ctx context.Context, id uint) (*models.Meetapp, error)
	FindByOrganizer(ctx context.Context, userID uint) ([]models.Meetapp, error)
	FindBetween(ctx context.Context, start, end time.Time, offset, limit int) ([]models.Meetapp, error)
	Save(ctx context.Context, meetapp *models.Meetapp) error
	Delete(ctx context.Context, id uint) error
}

type meetappRepository struct {
	db *gorm.DB
}

func NewMeetappRepository(db *gorm.DB) MeetappRepository {
	return &meetappRepository{db: db}
}

func (r *meetappRepository) Create(ctx context.Context, meetapp *models.Meetapp) error {
	return r.db.WithContext(ctx).Create(meetapp).Error
}

func (r *meetappRepository) FindByID(ctx context.Context, id uint) (*models.Meetapp, error) {
	var meetapp models.Meetapp
	if err := r.db.WithContext(ctx).First(&meetapp, id).Error; err != nil {
		return nil, err
	}
	return &meetapp, nil
}

func (r *meetappRepository) FindByOrganizer(ctx context.Context, userID uint) ([]models.Meetapp, error) {
	var meetapps []models.Meetapp
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&meetapps).Error
	if err != nil {
		return nil, err
	}
	return meetapps, nil
}

// FindBetween returns one page of meetapps dated within [start, end] with the
// organizer and banner preloaded. The organizer is limited to public columns.
func (r *meetappRepository) FindBetween(ctx context.Context, start, end time.Time, offset, limit int) ([]models.Meetapp, error) {
	var meetapps []models.Meetapp
	err := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Preload("Banner").
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&meetapps).Error
	if err != nil {
		return nil, err
	}
	return meetapps, nil
}

func (r *meetappRepository) Save(ctx context.Context, meetapp *models.Meetapp) error {
	return r.db.WithContext(ctx).Omit("User", "Banner").Save(meetapp).Error
}

func (r *meetappRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Meetapp{}, id).Error
}
