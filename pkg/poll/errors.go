package poll

import "errors"

var (
	ErrTimeout         = errors.New("poll: timed out waiting for condition")
	ErrInvalidInterval = errors.New("poll: interval must be positive")
)
