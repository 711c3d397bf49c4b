package domain

import "errors"

var (
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrValidation           = errors.New("missing required field")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrTaskNotFound         = errors.New("task not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailTaken           = errors.New("email already registered")
	ErrSelfDeletion         = errors.New("cannot delete own account")
	ErrUserHasRecords       = errors.New("user still referenced by tasks or notifications")

	// ErrSubscriptionGone is reported by the push channel when the endpoint
	// answered 410; the dispatcher reacts by dropping the subscription row.
	ErrSubscriptionGone = errors.New("push subscription gone")
)
