package service

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrUnauthorized           = errors.New("only teachers can create sessions")
	ErrInvalidToken           = errors.New("invalid scan payload")
	ErrSessionInactive        = errors.New("session does not exist or is inactive")
	ErrOutOfRange             = errors.New("student is not within the allowed proximity")
	ErrNotEnrolled            = errors.New("attendance record not found")
	ErrAlreadyEnrolled        = errors.New("student already enrolled in session")
	ErrSessionNotFound        = errors.New("session not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrReminderNotFound       = errors.New("reminder not found")
	ErrNoLinkedStudent        = errors.New("no linked student found")
)
