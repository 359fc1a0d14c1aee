package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoContainer is returned when a Filler has no container to write to.
	ErrNoContainer = errors.New("prompt: container is nil")
	// ErrInvalidSelection is returned when a select keeps answering with an
	// index outside the offered options.
	ErrInvalidSelection = errors.New("prompt: invalid selection")
)
