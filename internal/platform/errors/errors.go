package apperrors

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrTextNotFound     = errors.New("text not found")
	ErrNoCurrentSession = errors.New("no session in progress")
	ErrNoActiveAttempt  = errors.New("no active attempt")
)
