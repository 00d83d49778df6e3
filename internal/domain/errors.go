package domain

import "errors"

var (
	// ErrOrderNotFound indicates the requested order does not exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrFeedbackNotFound indicates the requested feedback entry does not exist
	ErrFeedbackNotFound = errors.New("feedback not found")

	// ErrProfileNotFound indicates no account exists for the given identity
	ErrProfileNotFound = errors.New("profile not found")

	// ErrEmptyMessage indicates a chat turn was submitted without text
	ErrEmptyMessage = errors.New("message must not be empty")
)
