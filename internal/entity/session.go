package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Session is an attendance-taking window. The id is a random 6-digit number
// so it stays short enough to type in by hand when a QR scan fails.
type Session struct {
	ID        int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Date      string    `gorm:"type:varchar(10);not null;index"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index"`
	Teacher   User      `gorm:"foreignKey:TeacherID"`

	Active bool `gorm:"not null;index"`

	// Snapshot of the eligibility filter used to seed the ledger at creation.
	// Not consulted again afterwards.
	Scope datatypes.JSON

	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null;index"`
}
