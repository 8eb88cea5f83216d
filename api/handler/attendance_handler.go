package handler

import (
	"errors"
	"net/http"
	"strconv"

	"attendra/internal/dto"
	"attendra/internal/geo"
	"attendra/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AttendanceHandler struct {
	Service  *service.AttendanceService
	Validate *validator.Validate
}

func NewAttendanceHandler(svc *service.AttendanceService, validate *validator.Validate) *AttendanceHandler {
	return &AttendanceHandler{Service: svc, Validate: validate}
}

func (h *AttendanceHandler) CreateSession(c echo.Context) error {
	var req dto.CreateSessionRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	teacherID, err := uuid.Parse(req.TeacherID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid teacher id"))
	}

	result, err := h.Service.CreateSession(c.Request().Context(), service.CreateSessionInput{
		Name:      req.SessionName,
		Date:      req.Date,
		TeacherID: teacherID,
		Scope: service.ScopeFilter{
			Courses:   req.Courses,
			Section:   req.Section,
			YearLevel: req.YearLevel,
		},
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.CreateSessionResponse{
		SessionID: result.SessionID,
		QRCode:    result.QRCode,
	})
}

func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	var req dto.CheckInRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid student id"))
	}

	result, err := h.Service.CheckIn(c.Request().Context(), service.CheckInInput{
		Payload:   req.QRData,
		StudentID: studentID,
		Location:  geo.Point{Latitude: req.StudentLat, Longitude: req.StudentLon},
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	message := "Attendance confirmed"
	if !result.Notified {
		message = "Attendance confirmed; guardian notification could not be delivered"
	}
	return c.JSON(http.StatusOK, dto.CheckInResponse{
		Status:           result.Status,
		GuardianNotified: result.Notified,
		Message:          message,
	})
}

func (h *AttendanceHandler) GetAttendanceByCriteria(c echo.Context) error {
	var req dto.AttendanceCriteriaRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}

	rows, err := h.Service.GetAttendanceByCriteria(c.Request().Context(), service.AttendanceCriteria{
		Courses:   req.Courses,
		YearLevel: req.YearLevel,
		Section:   req.Section,
		Date:      req.Date,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *AttendanceHandler) GetAttendanceBySession(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	rows, err := h.Service.GetAttendanceBySession(c.Request().Context(), sessionID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *AttendanceHandler) ListActiveSessionStudents(c echo.Context) error {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	rows, err := h.Service.ListActiveSessionStudents(c.Request().Context(), sessionID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *AttendanceHandler) ListSessionNames(c echo.Context) error {
	sessions, err := h.Service.ListSessionNames(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.SessionSummariesFromEntities(sessions))
}

func (h *AttendanceHandler) AddStudent(c echo.Context) error {
	sessionID, studentID, err := parseEnrollmentParams(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.AddStudent(c.Request().Context(), sessionID, studentID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *AttendanceHandler) RemoveStudent(c echo.Context) error {
	sessionID, studentID, err := parseEnrollmentParams(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.RemoveStudent(c.Request().Context(), sessionID, studentID); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AttendanceHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func parseSessionID(c echo.Context) (int, error) {
	sessionID, err := strconv.Atoi(c.Param("sessionId"))
	if err != nil {
		return 0, errors.New("invalid session id")
	}
	return sessionID, nil
}

func parseEnrollmentParams(c echo.Context) (int, uuid.UUID, error) {
	sessionID, err := parseSessionID(c)
	if err != nil {
		return 0, uuid.Nil, err
	}
	studentID, err := uuid.Parse(c.Param("studentId"))
	if err != nil {
		return 0, uuid.Nil, errors.New("invalid student id")
	}
	return sessionID, studentID, nil
}
