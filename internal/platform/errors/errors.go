package apperrors

import "errors"

var (
	ErrDayOutOfRange       = errors.New("day out of range")
	ErrTaskIndexOutOfRange = errors.New("task index out of range")
	ErrInvalidValue        = errors.New("invalid value")
	ErrTimerNotRunning     = errors.New("timer not running")
	ErrDecode              = errors.New("sprint data decode failed")
	ErrPersistence         = errors.New("sprint data persist failed")
)
