package dto

import (
	"time"

	"attendra/internal/entity"
)

type CreateReminderRequest struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description" validate:"omitempty"`
	UserID       string    `json:"user_id" validate:"required,uuid"`
	ReminderDate time.Time `json:"reminder_date" validate:"required"`
	IsCompleted  bool      `json:"is_completed"`
}

type UpdateReminderRequest struct {
	Title        *string    `json:"title" validate:"omitempty,min=1"`
	Description  *string    `json:"description"`
	ReminderDate *time.Time `json:"reminder_date"`
	IsCompleted  *bool      `json:"is_completed"`
}

type ReminderResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	UserID       string    `json:"user_id"`
	ReminderDate time.Time `json:"reminder_date"`
	IsCompleted  bool      `json:"is_completed"`
	CreatedAt    time.Time `json:"created_at"`
}

func ReminderResponseFromEntity(reminder *entity.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:           reminder.ID.String(),
		Title:        reminder.Title,
		Description:  reminder.Description,
		UserID:       reminder.UserID.String(),
		ReminderDate: reminder.ReminderDate,
		IsCompleted:  reminder.IsCompleted,
		CreatedAt:    reminder.CreatedAt,
	}
}

func ReminderResponsesFromEntities(reminders []entity.Reminder) []ReminderResponse {
	responses := make([]ReminderResponse, 0, len(reminders))
	for i := range reminders {
		responses = append(responses, ReminderResponseFromEntity(&reminders[i]))
	}
	return responses
}
