package repository

import (
	"context"
	"errors"

	"attendra/internal/entity"

	"gorm.io/gorm"
)

// ErrDuplicateKey reports that an insert lost a uniqueness race. The unique
// constraint is the final authority on session id allocation; callers
// re-sample on this error.
var ErrDuplicateKey = errors.New("duplicate key")

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id int) (*entity.Session, error)
	ExistsByID(ctx context.Context, id int) (bool, error)
	// Deactivate flips active to false and reports whether this call made the
	// transition. A session already inactive yields (false, nil).
	Deactivate(ctx context.Context, id int) (bool, error)
	ListActive(ctx context.Context) ([]entity.Session, error)
	ListNames(ctx context.Context) ([]entity.Session, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *entity.Session) error {
	err := r.db.WithContext(ctx).Create(s).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (r *sessionRepository) FindByID(ctx context.Context, id int) (*entity.Session, error) {
	var session entity.Session
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&session).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Session{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *sessionRepository) Deactivate(ctx context.Context, id int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Session{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *sessionRepository) ListActive(ctx context.Context) ([]entity.Session, error) {
	var sessions []entity.Session
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) ListNames(ctx context.Context) ([]entity.Session, error) {
	var sessions []entity.Session
	err := r.db.WithContext(ctx).
		Select("id", "name", "date", "active").
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
