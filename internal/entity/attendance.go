package entity

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendancePresent AttendanceStatus = "present"
)

// AttendanceRecord is one ledger row per (session, student) pair. A row
// exists only for students seeded from the session scope or added explicitly.
type AttendanceRecord struct {
	SessionID int       `gorm:"primaryKey;autoIncrement:false"`
	StudentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Student   User      `gorm:"foreignKey:StudentID"`

	Date      string           `gorm:"type:varchar(10);not null;index"`
	Status    AttendanceStatus `gorm:"type:varchar(10);not null;index"`
	Timestamp time.Time        `gorm:"not null"`
}
