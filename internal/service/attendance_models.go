package service

import (
	"attendra/internal/entity"
	"attendra/internal/geo"

	"github.com/google/uuid"
)

// ScopeFilter selects the students seeded into a session's ledger at
// creation. It is snapshotted onto the session row and never re-applied.
type ScopeFilter struct {
	Courses   string `json:"courses"`
	Section   string `json:"section"`
	YearLevel string `json:"year_level"`
}

type CreateSessionInput struct {
	Name      string
	Date      string
	TeacherID uuid.UUID
	Scope     ScopeFilter
}

type CreateSessionResult struct {
	SessionID int
	QRCode    string
}

type CheckInInput struct {
	Payload   string
	StudentID uuid.UUID
	Location  geo.Point
}

type CheckInResult struct {
	Status entity.AttendanceStatus
	// Notified is false when the guardian notification could not be
	// delivered; the attendance change itself is already durable.
	Notified bool
}

type AttendanceCriteria struct {
	Courses   string
	YearLevel string
	Section   string
	Date      string
}
