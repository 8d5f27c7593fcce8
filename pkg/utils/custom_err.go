package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrSessionNotFound    = errors.New("quiz session not found")
	ErrQuizNotFinished    = errors.New("quiz not finished")
	ErrTransitionRejected = errors.New("transition rejected")
	ErrDatabaseError      = errors.New("database error")
)
