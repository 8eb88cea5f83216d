package dto

import (
	"attendra/internal/entity"
)

type CreateSessionRequest struct {
	SessionName string `json:"sessionName" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	TeacherID   string `json:"teacherId" validate:"required,uuid"`
	Courses     string `json:"courses" validate:"required"`
	Section     string `json:"section" validate:"required"`
	YearLevel   string `json:"year_level" validate:"required"`
}

type CreateSessionResponse struct {
	SessionID int    `json:"sessionId"`
	QRCode    string `json:"qrCode"`
}

type CheckInRequest struct {
	QRData     string  `json:"qrData" validate:"required"`
	StudentID  string  `json:"studentId" validate:"required,uuid"`
	StudentLat float64 `json:"studentLat" validate:"latitude"`
	StudentLon float64 `json:"studentLon" validate:"longitude"`
}

type CheckInResponse struct {
	Status           entity.AttendanceStatus `json:"status"`
	GuardianNotified bool                    `json:"guardian_notified"`
	Message          string                  `json:"message"`
}

type AttendanceCriteriaRequest struct {
	Courses   string `json:"courses" validate:"required"`
	YearLevel string `json:"year_level" validate:"required"`
	Section   string `json:"section" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
}

type SessionSummary struct {
	SessionID int    `json:"sessionId"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Active    bool   `json:"active"`
}

func SessionSummariesFromEntities(sessions []entity.Session) []SessionSummary {
	summaries := make([]SessionSummary, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, SessionSummary{
			SessionID: session.ID,
			Name:      session.Name,
			Date:      session.Date,
			Active:    session.Active,
		})
	}
	return summaries
}
