package service

import (
	"context"
	"errors"
	"testing"

	"attendra/internal/entity"
)

func TestRandomSessionIDRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := randomSessionID()
		if id < sessionIDMin || id > sessionIDMax {
			t.Fatalf("id %d outside [%d, %d]", id, sessionIDMin, sessionIDMax)
		}
	}
}

func TestAllocateSkipsExistingIDs(t *testing.T) {
	sessions := newFakeSessionRepo()
	// Occupy a slice of the space; the allocator must land outside it.
	for id := sessionIDMin; id < sessionIDMin+100; id++ {
		sessions.sessions[id] = &entity.Session{ID: id}
	}

	allocator := sessionIDAllocator{sessions: sessions}
	for i := 0; i < 50; i++ {
		id, err := allocator.Allocate(context.Background())
		if err != nil {
			t.Fatalf("Allocate: %v", err)
		}
		if _, taken := sessions.sessions[id]; taken {
			t.Fatalf("allocator returned occupied id %d", id)
		}
	}
}

func TestAllocatePropagatesStoreError(t *testing.T) {
	sessions := newFakeSessionRepo()
	storeErr := errors.New("connection reset")
	sessions.existsErr = storeErr

	allocator := sessionIDAllocator{sessions: sessions}
	if _, err := allocator.Allocate(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
