package service

import (
	"context"
	"sync"
	"time"

	"attendra/internal/entity"
	"attendra/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(discard{})
	return logger
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[int]*entity.Session

	createErr    error
	existsErr    error
	dupRemaining int // Create returns ErrDuplicateKey this many times
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[int]*entity.Session)}
}

func (r *fakeSessionRepo) Create(ctx context.Context, s *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if r.dupRemaining > 0 {
		r.dupRemaining--
		return repository.ErrDuplicateKey
	}
	if _, ok := r.sessions[s.ID]; ok {
		return repository.ErrDuplicateKey
	}
	copied := *s
	r.sessions[s.ID] = &copied
	return nil
}

func (r *fakeSessionRepo) FindByID(ctx context.Context, id int) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSessionRepo) ExistsByID(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.existsErr != nil {
		return false, r.existsErr
	}
	_, ok := r.sessions[id]
	return ok, nil
}

func (r *fakeSessionRepo) Deactivate(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || !s.Active {
		return false, nil
	}
	s.Active = false
	return true, nil
}

func (r *fakeSessionRepo) ListActive(ctx context.Context) ([]entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Session
	for _, s := range r.sessions {
		if s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) ListNames(ctx context.Context) ([]entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Session
	for _, s := range r.sessions {
		out = append(out, entity.Session{ID: s.ID, Name: s.Name, Date: s.Date, Active: s.Active})
	}
	return out, nil
}

type ledgerKey struct {
	sessionID int
	studentID uuid.UUID
}

type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records map[ledgerKey]*entity.AttendanceRecord
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[ledgerKey]*entity.AttendanceRecord)}
}

func (r *fakeAttendanceRepo) Seed(ctx context.Context, sessionID int, studentIDs []uuid.UUID, date string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, studentID := range studentIDs {
		key := ledgerKey{sessionID, studentID}
		if _, ok := r.records[key]; ok {
			continue
		}
		r.records[key] = &entity.AttendanceRecord{
			SessionID: sessionID,
			StudentID: studentID,
			Date:      date,
			Status:    entity.AttendanceAbsent,
			Timestamp: now,
		}
	}
	return nil
}

func (r *fakeAttendanceRepo) Create(ctx context.Context, record *entity.AttendanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *record
	r.records[ledgerKey{record.SessionID, record.StudentID}] = &copied
	return nil
}

func (r *fakeAttendanceRepo) Find(ctx context.Context, sessionID int, studentID uuid.UUID) (*entity.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[ledgerKey{sessionID, studentID}]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (r *fakeAttendanceRepo) SetStatus(ctx context.Context, sessionID int, studentID uuid.UUID, status entity.AttendanceStatus, timestamp time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if record, ok := r.records[ledgerKey{sessionID, studentID}]; ok {
		record.Status = status
		record.Timestamp = timestamp
	}
	return nil
}

func (r *fakeAttendanceRepo) Delete(ctx context.Context, sessionID int, studentID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, ledgerKey{sessionID, studentID})
	return nil
}

func (r *fakeAttendanceRepo) ListByStatus(ctx context.Context, sessionID int, status entity.AttendanceStatus) ([]entity.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.AttendanceRecord
	for _, record := range r.records {
		if record.SessionID == sessionID && record.Status == status {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListBySession(ctx context.Context, sessionID int) ([]repository.AttendanceRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []repository.AttendanceRow
	for _, record := range r.records {
		if record.SessionID == sessionID {
			out = append(out, repository.AttendanceRow{
				StudentID: record.StudentID,
				Date:      record.Date,
				Status:    record.Status,
				Timestamp: record.Timestamp,
			})
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListByCriteria(ctx context.Context, courses, yearLevel, section, date string) ([]repository.AttendanceRow, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) count(sessionID int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, record := range r.records {
		if record.SessionID == sessionID {
			n++
		}
	}
	return n
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) add(user entity.User) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = &user
	return user.ID
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.add(*user)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindGuardianOf(ctx context.Context, studentID uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Role == entity.UserRoleParent && user.LinkedStudentID != nil && *user.LinkedStudentID == studentID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListStudentsByScope(ctx context.Context, courses, section, yearLevel string) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.User
	for _, user := range r.users {
		if user.Role == entity.UserRoleStudent &&
			user.Courses == courses && user.Section == section && user.YearLevel == yearLevel {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.User
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

type notifyCall struct {
	guardianID uuid.UUID
	studentID  uuid.UUID
	sessionID  int
	present    bool
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []notifyCall
	err   error
}

func (n *fakeNotifier) NotifyAbsence(ctx context.Context, guardian, student *entity.User, session *entity.Session) error {
	return n.record(guardian, student, session, false)
}

func (n *fakeNotifier) NotifyPresence(ctx context.Context, guardian, student *entity.User, session *entity.Session) error {
	return n.record(guardian, student, session, true)
}

func (n *fakeNotifier) record(guardian, student *entity.User, session *entity.Session, present bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.calls = append(n.calls, notifyCall{
		guardianID: guardian.ID,
		studentID:  student.ID,
		sessionID:  session.ID,
		present:    present,
	})
	return nil
}

func (n *fakeNotifier) callCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

type fakeScheduler struct {
	mu        sync.Mutex
	scheduled map[int]time.Time
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{scheduled: make(map[int]time.Time)}
}

func (s *fakeScheduler) Schedule(sessionID int, dueAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduled[sessionID] = dueAt
}

type stubEncoder struct {
	rendered []ScanToken
}

func (e *stubEncoder) Render(token ScanToken) (string, error) {
	e.rendered = append(e.rendered, token)
	return "data:image/png;base64,stub", nil
}
