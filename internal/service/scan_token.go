package service

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ScanToken is the payload embedded in a session QR code. It is never
// persisted; the session row is the authority and the embedded expiry is a
// client-side hint only.
type ScanToken struct {
	SessionID int       `json:"session_id"`
	Date      string    `json:"date"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ScanPayload is the result of parsing what a student submitted at check-in.
// Structured tells the two input formats apart: the full JSON token, or a
// bare decimal session id typed in from an older artifact.
type ScanPayload struct {
	SessionID  int
	Structured bool
	Token      *ScanToken
}

// ParseScanPayload accepts either the serialized ScanToken or a bare decimal
// session id. Anything else is ErrInvalidToken.
func ParseScanPayload(raw string) (ScanPayload, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ScanPayload{}, ErrInvalidToken
	}

	if strings.HasPrefix(trimmed, "{") {
		var token ScanToken
		if err := json.Unmarshal([]byte(trimmed), &token); err != nil {
			return ScanPayload{}, ErrInvalidToken
		}
		if token.SessionID <= 0 {
			return ScanPayload{}, ErrInvalidToken
		}
		return ScanPayload{SessionID: token.SessionID, Structured: true, Token: &token}, nil
	}

	id, err := strconv.Atoi(trimmed)
	if err != nil || id <= 0 {
		return ScanPayload{}, ErrInvalidToken
	}
	return ScanPayload{SessionID: id}, nil
}
