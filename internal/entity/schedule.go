package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Schedule struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubjectCode string    `gorm:"type:varchar(20);not null"`
	SubjectName string    `gorm:"type:varchar(255);not null"`

	InstructorID *uuid.UUID `gorm:"type:uuid;index"`
	Instructor   *User      `gorm:"foreignKey:InstructorID"`

	YearLevel string `gorm:"type:varchar(20);index:idx_schedules_scope"`
	Section   string `gorm:"type:varchar(20);index:idx_schedules_scope"`
	Courses   string `gorm:"type:varchar(100);index:idx_schedules_scope"`

	DayOfWeek string `gorm:"type:varchar(10);not null"`
	StartTime string `gorm:"type:varchar(8);not null"`
	EndTime   string `gorm:"type:varchar(8);not null"`
	Room      string `gorm:"type:varchar(50)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
