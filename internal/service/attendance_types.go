package service

import (
	"context"
	"time"

	"attendra/internal/entity"
	"attendra/internal/geo"
)

// AttendanceConfig carries the deployment-level knobs of the attendance core.
// The reference point is a single configured coordinate per deployment, not
// the creating teacher's live position.
type AttendanceConfig struct {
	SessionTTL     time.Duration
	ReferencePoint geo.Point
	MaxDistanceKm  float64
	QRSize         int
}

// TokenEncoder renders a scan token into a scannable artifact, returned to
// the session creator as an inline data URL.
type TokenEncoder interface {
	Render(token ScanToken) (string, error)
}

// GuardianNotifier delivers attendance notifications to a student's guardian.
// Failures are advisory: callers log them and move on.
type GuardianNotifier interface {
	NotifyAbsence(ctx context.Context, guardian, student *entity.User, session *entity.Session) error
	NotifyPresence(ctx context.Context, guardian, student *entity.User, session *entity.Session) error
}

// ExpirationScheduler runs the deferred expiry transition once per session,
// independent of the request that created it.
type ExpirationScheduler interface {
	Schedule(sessionID int, dueAt time.Time)
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
