package service

import (
	"context"
	"math/rand/v2"

	"attendra/internal/repository"
)

const (
	sessionIDMin = 100000
	sessionIDMax = 999999
)

// sessionIDAllocator mints 6-digit session ids. The existence pre-check keeps
// the expected insert-collision rate near zero; the store's unique constraint
// remains the final authority. Store errors propagate immediately so a broken
// store cannot turn into an infinite retry loop.
type sessionIDAllocator struct {
	sessions repository.SessionRepository
}

func (a sessionIDAllocator) Allocate(ctx context.Context) (int, error) {
	for {
		id := randomSessionID()
		exists, err := a.sessions.ExistsByID(ctx, id)
		if err != nil {
			return 0, err
		}
		if exists {
			continue
		}
		return id, nil
	}
}

func randomSessionID() int {
	return sessionIDMin + rand.IntN(sessionIDMax-sessionIDMin+1)
}
