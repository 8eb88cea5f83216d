package repository

import (
	"context"
	"errors"
	"time"

	"attendra/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRow is a ledger row joined with the student's user record, the
// shape the attendance read endpoints return.
type AttendanceRow struct {
	StudentID uuid.UUID               `json:"student_id"`
	FullName  string                  `json:"full_name"`
	YearLevel string                  `json:"year_level"`
	Section   string                  `json:"section"`
	Courses   string                  `json:"courses"`
	Date      string                  `json:"date"`
	Status    entity.AttendanceStatus `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
}

type AttendanceRepository interface {
	Seed(ctx context.Context, sessionID int, studentIDs []uuid.UUID, date string, now time.Time) error
	Create(ctx context.Context, record *entity.AttendanceRecord) error
	Find(ctx context.Context, sessionID int, studentID uuid.UUID) (*entity.AttendanceRecord, error)
	SetStatus(ctx context.Context, sessionID int, studentID uuid.UUID, status entity.AttendanceStatus, timestamp time.Time) error
	Delete(ctx context.Context, sessionID int, studentID uuid.UUID) error
	ListByStatus(ctx context.Context, sessionID int, status entity.AttendanceStatus) ([]entity.AttendanceRecord, error)
	ListBySession(ctx context.Context, sessionID int) ([]AttendanceRow, error)
	ListByCriteria(ctx context.Context, courses, yearLevel, section, date string) ([]AttendanceRow, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Seed(ctx context.Context, sessionID int, studentIDs []uuid.UUID, date string, now time.Time) error {
	if len(studentIDs) == 0 {
		return nil
	}
	records := make([]entity.AttendanceRecord, 0, len(studentIDs))
	for _, studentID := range studentIDs {
		records = append(records, entity.AttendanceRecord{
			SessionID: sessionID,
			StudentID: studentID,
			Date:      date,
			Status:    entity.AttendanceAbsent,
			Timestamp: now,
		})
	}
	// A student added explicitly before seeding finishes keeps their row.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&records).Error
}

func (r *attendanceRepository) Create(ctx context.Context, record *entity.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepository) Find(ctx context.Context, sessionID int, studentID uuid.UUID) (*entity.AttendanceRecord, error) {
	var record entity.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND student_id = ?", sessionID, studentID).
		First(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) SetStatus(ctx context.Context, sessionID int, studentID uuid.UUID, status entity.AttendanceStatus, timestamp time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entity.AttendanceRecord{}).
		Where("session_id = ? AND student_id = ?", sessionID, studentID).
		Updates(map[string]any{"status": status, "timestamp": timestamp}).
		Error
}

func (r *attendanceRepository) Delete(ctx context.Context, sessionID int, studentID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("session_id = ? AND student_id = ?", sessionID, studentID).
		Delete(&entity.AttendanceRecord{}).
		Error
}

func (r *attendanceRepository) ListByStatus(ctx context.Context, sessionID int, status entity.AttendanceStatus) ([]entity.AttendanceRecord, error) {
	var records []entity.AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND status = ?", sessionID, status).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *attendanceRepository) ListBySession(ctx context.Context, sessionID int) ([]AttendanceRow, error) {
	var rows []AttendanceRow
	err := r.db.WithContext(ctx).
		Model(&entity.AttendanceRecord{}).
		Select("attendance_records.student_id, users.full_name, users.year_level, users.section, users.courses, attendance_records.date, attendance_records.status, attendance_records.timestamp").
		Joins("JOIN users ON users.id = attendance_records.student_id").
		Where("attendance_records.session_id = ?", sessionID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *attendanceRepository) ListByCriteria(ctx context.Context, courses, yearLevel, section, date string) ([]AttendanceRow, error) {
	var rows []AttendanceRow
	err := r.db.WithContext(ctx).
		Model(&entity.AttendanceRecord{}).
		Select("attendance_records.student_id, users.full_name, users.year_level, users.section, users.courses, attendance_records.date, attendance_records.status, attendance_records.timestamp").
		Joins("JOIN users ON users.id = attendance_records.student_id").
		Where("users.courses = ? AND users.year_level = ? AND users.section = ? AND attendance_records.date = ?",
			courses, yearLevel, section, date).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
