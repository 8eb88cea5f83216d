package repository

import (
	"context"
	"errors"

	"attendra/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindGuardianOf(ctx context.Context, studentID uuid.UUID) (*entity.User, error)
	ListStudentsByScope(ctx context.Context, courses, section, yearLevel string) ([]entity.User, error)
	List(ctx context.Context, limit, offset int) ([]entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindGuardianOf(ctx context.Context, studentID uuid.UUID) (*entity.User, error) {
	var guardian entity.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND linked_student_id = ?", entity.UserRoleParent, studentID).
		First(&guardian).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guardian, nil
}

func (r *userRepository) ListStudentsByScope(ctx context.Context, courses, section, yearLevel string) ([]entity.User, error) {
	var students []entity.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND courses = ? AND section = ? AND year_level = ?",
			entity.UserRoleStudent, courses, section, yearLevel).
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *userRepository) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	var users []entity.User
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
