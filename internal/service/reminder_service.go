package service

import (
	"context"
	"strings"
	"time"

	"attendra/internal/entity"
	"attendra/internal/repository"

	"github.com/google/uuid"
)

type CreateReminderInput struct {
	Title        string
	Description  string
	UserID       uuid.UUID
	ReminderDate time.Time
	IsCompleted  bool
}

// UpdateReminderInput carries a partial update; nil fields are left alone.
type UpdateReminderInput struct {
	Title        *string
	Description  *string
	ReminderDate *time.Time
	IsCompleted  *bool
}

type ReminderService struct {
	reminders repository.ReminderRepository
}

func NewReminderService(reminders repository.ReminderRepository) *ReminderService {
	return &ReminderService{reminders: reminders}
}

func (s *ReminderService) List(ctx context.Context) ([]entity.Reminder, error) {
	return s.reminders.List(ctx)
}

func (s *ReminderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Reminder, error) {
	return s.reminders.ListByUser(ctx, userID)
}

func (s *ReminderService) Create(ctx context.Context, input CreateReminderInput) (*entity.Reminder, error) {
	if strings.TrimSpace(input.Title) == "" || input.UserID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	reminder := &entity.Reminder{
		Title:        input.Title,
		Description:  input.Description,
		UserID:       input.UserID,
		ReminderDate: input.ReminderDate,
		IsCompleted:  input.IsCompleted,
	}
	if err := s.reminders.Create(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *ReminderService) Update(ctx context.Context, id uuid.UUID, input UpdateReminderInput) (*entity.Reminder, error) {
	if input.Title == nil && input.Description == nil && input.ReminderDate == nil && input.IsCompleted == nil {
		return nil, ErrInvalidInput
	}

	reminder, err := s.reminders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}

	if input.Title != nil {
		reminder.Title = *input.Title
	}
	if input.Description != nil {
		reminder.Description = *input.Description
	}
	if input.ReminderDate != nil {
		reminder.ReminderDate = *input.ReminderDate
	}
	if input.IsCompleted != nil {
		reminder.IsCompleted = *input.IsCompleted
	}

	if err := s.reminders.Save(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *ReminderService) Delete(ctx context.Context, id uuid.UUID) error {
	reminder, err := s.reminders.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if reminder == nil {
		return ErrReminderNotFound
	}
	return s.reminders.Delete(ctx, id)
}
