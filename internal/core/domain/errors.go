package domain

import "errors"

// Common domain errors
var (
	ErrNotAuthenticated   = errors.New("user not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Attendance errors
var (
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrNoActiveCheckIn   = errors.New("no active check-in found for today")
)
