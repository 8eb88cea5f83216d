package repository

import (
	"context"
	"errors"

	"attendra/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderRepository interface {
	Create(ctx context.Context, reminder *entity.Reminder) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reminder, error)
	List(ctx context.Context) ([]entity.Reminder, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Reminder, error)
	Save(ctx context.Context, reminder *entity.Reminder) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reminder).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) List(ctx context.Context) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := r.db.WithContext(ctx).
		Order("reminder_date ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Reminder, error) {
	var reminders []entity.Reminder
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("reminder_date ASC").
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) Save(ctx context.Context, reminder *entity.Reminder) error {
	return r.db.WithContext(ctx).Save(reminder).Error
}

func (r *reminderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Reminder{}).
		Error
}
