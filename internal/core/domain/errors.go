package domain

import "errors"

// Common domain errors
var (
	ErrUnauthenticated  = errors.New("no authenticated user")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Flight lifecycle errors
var (
	ErrRequestNotFound   = errors.New("flight request not found")
	ErrPlanNotFound      = errors.New("flight plan not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidPlan       = errors.New("invalid flight plan input")
	// ErrNotificationDeliveryFailed marks a notification write that failed after
	// its transition was already committed. Non-fatal: callers log it, the
	// transition stands.
	ErrNotificationDeliveryFailed = errors.New("notification delivery failed")
)

// Rate errors
var (
	ErrRateNotFound = errors.New("hourly rate not found")
)

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
)
