package service

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type ExpireFunc func(ctx context.Context, sessionID int) error

// TimerScheduler runs the deferred expiry transition on in-process one-shot
// timers, keyed by session id. Timers live with the process, not with the
// request that created the session; sessions that survive a restart are
// re-armed from their persisted due time by the startup recovery sweep.
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[int]*time.Timer
	expire ExpireFunc

	clock   Clock
	logger  *logrus.Logger
	timeout time.Duration
}

func NewTimerScheduler(clock Clock, logger *logrus.Logger) *TimerScheduler {
	return &TimerScheduler{
		timers:  make(map[int]*time.Timer),
		clock:   clock,
		logger:  logger,
		timeout: backgroundTimeout,
	}
}

// SetExpireFunc wires the transition callback. Set once before any timer can
// fire; scheduled timers with no callback are dropped.
func (s *TimerScheduler) SetExpireFunc(fn ExpireFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expire = fn
}

// Schedule arms a one-shot expiry for the session. Re-scheduling an already
// armed session is a no-op; a past due time fires immediately.
func (s *TimerScheduler) Schedule(sessionID int, dueAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, armed := s.timers[sessionID]; armed {
		return
	}
	delay := dueAt.Sub(s.clock.Now())
	if delay < 0 {
		delay = 0
	}
	s.timers[sessionID] = time.AfterFunc(delay, func() {
		s.fire(sessionID)
	})
}

// Cancel disarms a pending expiry and reports whether one was armed. The
// standard lifecycle never cancels; this exists for a manual end-session
// control.
func (s *TimerScheduler) Cancel(sessionID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer, armed := s.timers[sessionID]
	if !armed {
		return false
	}
	timer.Stop()
	delete(s.timers, sessionID)
	return true
}

// Stop disarms every pending timer. Shutdown only; pending sessions are
// recovered from the store on the next start.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sessionID, timer := range s.timers {
		timer.Stop()
		delete(s.timers, sessionID)
	}
}

func (s *TimerScheduler) fire(sessionID int) {
	s.mu.Lock()
	delete(s.timers, sessionID)
	fn := s.expire
	s.mu.Unlock()

	if fn == nil {
		s.logger.WithField("session_id", sessionID).Error("expiry fired with no callback wired")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := fn(ctx, sessionID); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).Error("deferred expiry failed")
	}
}
