package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a write lost an optimistic concurrency check
// and should be retried against fresh data.
var ErrConflict = errors.New("concurrent update conflict")

// ErrUnauthorized indicates that the caller's credentials were missing or invalid.
var ErrUnauthorized = errors.New("unauthorized")
