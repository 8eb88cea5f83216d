package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"attendra/internal/entity"
	"attendra/internal/geo"
	"attendra/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

const (
	defaultSessionTTL    = 10 * time.Minute
	defaultMaxDistanceKm = 0.2
	backgroundTimeout    = time.Minute
)

// AttendanceService owns the session lifecycle and the attendance state
// machine: minting sessions, admitting check-ins, and running the deferred
// expiry transition with its guardian notifications.
type AttendanceService struct {
	sessions   repository.SessionRepository
	attendance repository.AttendanceRepository
	users      repository.UserRepository

	ids       sessionIDAllocator
	tokens    TokenEncoder
	notifier  GuardianNotifier
	scheduler ExpirationScheduler
	clock     Clock
	logger    *logrus.Logger
	config    AttendanceConfig

	background sync.WaitGroup
}

func NewAttendanceService(
	sessions repository.SessionRepository,
	attendance repository.AttendanceRepository,
	users repository.UserRepository,
	tokens TokenEncoder,
	notifier GuardianNotifier,
	scheduler ExpirationScheduler,
	clock Clock,
	logger *logrus.Logger,
	config AttendanceConfig,
) *AttendanceService {
	return &AttendanceService{
		sessions:   sessions,
		attendance: attendance,
		users:      users,
		ids:        sessionIDAllocator{sessions: sessions},
		tokens:     tokens,
		notifier:   notifier,
		scheduler:  scheduler,
		clock:      clock,
		logger:     logger,
		config:     config,
	}
}

// CreateSession mints a new active session and returns its id together with
// the rendered QR artifact. Ledger seeding runs in the background so the
// caller never waits on the bulk insert; the expiry transition is scheduled
// before returning.
func (s *AttendanceService) CreateSession(ctx context.Context, input CreateSessionInput) (*CreateSessionResult, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Date) == "" {
		return nil, ErrInvalidInput
	}

	teacher, err := s.users.FindByID(ctx, input.TeacherID)
	if err != nil {
		return nil, err
	}
	if teacher == nil || teacher.Role != entity.UserRoleTeacher {
		return nil, ErrUnauthorized
	}

	scopeJSON, err := json.Marshal(input.Scope)
	if err != nil {
		return nil, err
	}

	now := s.now()
	expiresAt := now.Add(s.sessionTTL())

	var session *entity.Session
	for {
		id, err := s.ids.Allocate(ctx)
		if err != nil {
			return nil, err
		}
		session = &entity.Session{
			ID:        id,
			Name:      input.Name,
			Date:      input.Date,
			TeacherID: teacher.ID,
			Active:    true,
			Scope:     datatypes.JSON(scopeJSON),
			CreatedAt: now,
			ExpiresAt: expiresAt,
		}
		err = s.sessions.Create(ctx, session)
		if errors.Is(err, repository.ErrDuplicateKey) {
			// lost the allocation race, pick another id
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}

	qr, err := s.tokens.Render(ScanToken{
		SessionID: session.ID,
		Date:      session.Date,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return nil, err
	}

	s.background.Add(1)
	go func() {
		defer s.background.Done()
		s.seedLedger(session.ID, session.Date, input.Scope)
	}()

	s.scheduler.Schedule(session.ID, expiresAt)

	s.logger.WithFields(logrus.Fields{
		"session_id": session.ID,
		"teacher_id": teacher.ID,
		"expires_at": expiresAt,
	}).Info("session created")

	return &CreateSessionResult{SessionID: session.ID, QRCode: qr}, nil
}

// ExpireSession flips the session inactive and notifies the guardian of every
// student still absent. It is idempotent: only the call that performs the
// active-to-inactive transition dispatches notifications.
func (s *AttendanceService) ExpireSession(ctx context.Context, sessionID int) error {
	flipped, err := s.sessions.Deactivate(ctx, sessionID)
	if err != nil {
		return err
	}
	if !flipped {
		return nil
	}

	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}

	absent, err := s.attendance.ListByStatus(ctx, sessionID, entity.AttendanceAbsent)
	if err != nil {
		return err
	}

	notified := 0
	for _, record := range absent {
		if s.notifyGuardian(ctx, record.StudentID, session, false) {
			notified++
		}
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"absent":     len(absent),
		"notified":   notified,
	}).Info("session expired")
	return nil
}

// CheckIn admits a student into an active session. The submitted payload may
// be the structured QR token or a bare session id. Repeated check-ins are
// idempotent; only the timestamp is refreshed.
func (s *AttendanceService) CheckIn(ctx context.Context, input CheckInInput) (*CheckInResult, error) {
	payload, err := ParseScanPayload(input.Payload)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.FindByID(ctx, payload.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || !session.Active {
		// unknown and expired sessions are deliberately indistinguishable
		return nil, ErrSessionInactive
	}

	if !geo.WithinRange(input.Location, s.config.ReferencePoint, s.maxDistanceKm()) {
		return nil, ErrOutOfRange
	}

	record, err := s.attendance.Find(ctx, session.ID, input.StudentID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotEnrolled
	}

	if err := s.attendance.SetStatus(ctx, session.ID, input.StudentID, entity.AttendancePresent, s.now()); err != nil {
		return nil, err
	}

	result := &CheckInResult{Status: entity.AttendancePresent}
	result.Notified = s.notifyGuardian(ctx, input.StudentID, session, true)
	return result, nil
}

func (s *AttendanceService) AddStudent(ctx context.Context, sessionID int, studentID uuid.UUID) error {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	record, err := s.attendance.Find(ctx, sessionID, studentID)
	if err != nil {
		return err
	}
	if record != nil {
		return ErrAlreadyEnrolled
	}

	return s.attendance.Create(ctx, &entity.AttendanceRecord{
		SessionID: sessionID,
		StudentID: studentID,
		Date:      session.Date,
		Status:    entity.AttendanceAbsent,
		Timestamp: s.now(),
	})
}

func (s *AttendanceService) RemoveStudent(ctx context.Context, sessionID int, studentID uuid.UUID) error {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrSessionNotFound
	}

	record, err := s.attendance.Find(ctx, sessionID, studentID)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrNotEnrolled
	}

	return s.attendance.Delete(ctx, sessionID, studentID)
}

func (s *AttendanceService) GetAttendanceByCriteria(ctx context.Context, criteria AttendanceCriteria) ([]repository.AttendanceRow, error) {
	return s.attendance.ListByCriteria(ctx, criteria.Courses, criteria.YearLevel, criteria.Section, criteria.Date)
}

func (s *AttendanceService) GetAttendanceBySession(ctx context.Context, sessionID int) ([]repository.AttendanceRow, error) {
	return s.attendance.ListBySession(ctx, sessionID)
}

// ListActiveSessionStudents returns the roster of an active session; unknown
// and inactive sessions are reported identically.
func (s *AttendanceService) ListActiveSessionStudents(ctx context.Context, sessionID int) ([]repository.AttendanceRow, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || !session.Active {
		return nil, ErrSessionInactive
	}
	return s.attendance.ListBySession(ctx, sessionID)
}

func (s *AttendanceService) ListSessionNames(ctx context.Context) ([]entity.Session, error) {
	return s.sessions.ListNames(ctx)
}

// RecoverPendingExpiries re-schedules the expiry transition for every session
// still marked active, from its persisted due time. Called once at startup so
// a restart never strands a session in the active state.
func (s *AttendanceService) RecoverPendingExpiries(ctx context.Context) error {
	sessions, err := s.sessions.ListActive(ctx)
	if err != nil {
		return err
	}
	for _, session := range sessions {
		s.scheduler.Schedule(session.ID, session.ExpiresAt)
	}
	if len(sessions) > 0 {
		s.logger.WithField("sessions", len(sessions)).Info("rescheduled pending expirations")
	}
	return nil
}

// Wait blocks until in-flight background work (ledger seeding) finishes.
// Used on shutdown and in tests.
func (s *AttendanceService) Wait() {
	s.background.Wait()
}

func (s *AttendanceService) seedLedger(sessionID int, date string, scope ScopeFilter) {
	ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
	defer cancel()

	students, err := s.users.ListStudentsByScope(ctx, scope.Courses, scope.Section, scope.YearLevel)
	if err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).Error("ledger seeding failed")
		return
	}

	studentIDs := make([]uuid.UUID, 0, len(students))
	for _, student := range students {
		studentIDs = append(studentIDs, student.ID)
	}

	if err := s.attendance.Seed(ctx, sessionID, studentIDs, date, s.now()); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).Error("ledger seeding failed")
		return
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"students":   len(studentIDs),
	}).Info("ledger seeded")
}

// notifyGuardian resolves the student's linked guardian and dispatches a
// single notification. A student without a guardian is skipped silently;
// lookup and dispatch failures are logged and reported as not-notified so one
// student's failure never blocks the rest.
func (s *AttendanceService) notifyGuardian(ctx context.Context, studentID uuid.UUID, session *entity.Session, present bool) bool {
	student, err := s.users.FindByID(ctx, studentID)
	if err != nil {
		s.logger.WithError(err).WithField("student_id", studentID).Error("student lookup failed")
		return false
	}
	if student == nil {
		return false
	}

	guardian, err := s.users.FindGuardianOf(ctx, studentID)
	if err != nil {
		s.logger.WithError(err).WithField("student_id", studentID).Error("guardian lookup failed")
		return false
	}
	if guardian == nil {
		return false
	}

	if present {
		err = s.notifier.NotifyPresence(ctx, guardian, student, session)
	} else {
		err = s.notifier.NotifyAbsence(ctx, guardian, student, session)
	}
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"session_id": session.ID,
			"student_id": studentID,
		}).Warn("guardian notification failed")
		return false
	}
	return true
}

func (s *AttendanceService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AttendanceService) sessionTTL() time.Duration {
	if s.config.SessionTTL > 0 {
		return s.config.SessionTTL
	}
	return defaultSessionTTL
}

func (s *AttendanceService) maxDistanceKm() float64 {
	if s.config.MaxDistanceKm > 0 {
		return s.config.MaxDistanceKm
	}
	return defaultMaxDistanceKm
}
