package repository

import (
	"context"

	"attendra/internal/entity"

	"gorm.io/gorm"
)

type ScheduleRepository interface {
	List(ctx context.Context) ([]entity.Schedule, error)
	ListByScope(ctx context.Context, yearLevel, section, courses string) ([]entity.Schedule, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) List(ctx context.Context) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := r.db.WithContext(ctx).
		Preload("Instructor").
		Order("day_of_week, start_time").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) ListByScope(ctx context.Context, yearLevel, section, courses string) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := r.db.WithContext(ctx).
		Preload("Instructor").
		Where("year_level = ? AND section = ? AND courses = ?", yearLevel, section, courses).
		Order("day_of_week, start_time").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}
