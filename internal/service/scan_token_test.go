package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestParseScanPayloadStructured(t *testing.T) {
	raw := `{"session_id": 123456, "date": "2026-08-31", "expiresAt": "2026-08-31T10:10:00Z"}`
	payload, err := ParseScanPayload(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !payload.Structured {
		t.Fatal("expected structured payload")
	}
	if payload.SessionID != 123456 {
		t.Fatalf("expected session id 123456, got %d", payload.SessionID)
	}
	if payload.Token == nil || payload.Token.Date != "2026-08-31" {
		t.Fatalf("token not carried through: %+v", payload.Token)
	}
}

func TestParseScanPayloadBareID(t *testing.T) {
	payload, err := ParseScanPayload("  654321 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Structured {
		t.Fatal("bare id should not be structured")
	}
	if payload.SessionID != 654321 {
		t.Fatalf("expected session id 654321, got %d", payload.SessionID)
	}
}

func TestParseScanPayloadRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"not-a-number",
		"{not json",
		`{"session_id": 0}`,
		`{"session_id": -5}`,
		"-42",
		"0",
	} {
		if _, err := ParseScanPayload(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("payload %q: expected ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestParseScanPayloadRoundTrip(t *testing.T) {
	token := ScanToken{
		SessionID: 428731,
		Date:      "2026-08-31",
		ExpiresAt: time.Date(2026, 8, 31, 10, 10, 0, 0, time.UTC),
	}
	serialized, err := json.Marshal(token)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	payload, err := ParseScanPayload(string(serialized))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.SessionID != token.SessionID {
		t.Fatalf("expected session id %d, got %d", token.SessionID, payload.SessionID)
	}
	if !payload.Token.ExpiresAt.Equal(token.ExpiresAt) {
		t.Fatalf("expected expiry %v, got %v", token.ExpiresAt, payload.Token.ExpiresAt)
	}
}
