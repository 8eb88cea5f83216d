package service

import (
	"context"

	"attendra/internal/entity"
	"attendra/internal/repository"

	"github.com/google/uuid"
)

type ScheduleService struct {
	schedules repository.ScheduleRepository
	users     repository.UserRepository
}

func NewScheduleService(schedules repository.ScheduleRepository, users repository.UserRepository) *ScheduleService {
	return &ScheduleService{schedules: schedules, users: users}
}

func (s *ScheduleService) List(ctx context.Context) ([]entity.Schedule, error) {
	return s.schedules.List(ctx)
}

// ListForGuardian resolves the guardian's linked student and returns the
// schedule matching that student's year level, section and courses.
func (s *ScheduleService) ListForGuardian(ctx context.Context, guardianID uuid.UUID) ([]entity.Schedule, error) {
	guardian, err := s.users.FindByID(ctx, guardianID)
	if err != nil {
		return nil, err
	}
	if guardian == nil || guardian.Role != entity.UserRoleParent || guardian.LinkedStudentID == nil {
		return nil, ErrNoLinkedStudent
	}

	student, err := s.users.FindByID(ctx, *guardian.LinkedStudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrNoLinkedStudent
	}

	return s.schedules.ListByScope(ctx, student.YearLevel, student.Section, student.Courses)
}
