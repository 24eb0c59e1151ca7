package galaxy

import "errors"

// Configuration errors returned by constructors and mode selection.
var (
	// ErrUnknownMode indicates an execution mode other than single or parallel.
	ErrUnknownMode = errors.New("galaxy: unknown execution mode")

	// ErrInvalidStarCount indicates a negative star count.
	ErrInvalidStarCount = errors.New("galaxy: star count must not be negative")

	// ErrInvalidWorkers indicates a negative worker pool size.
	ErrInvalidWorkers = errors.New("galaxy: worker count must not be negative")

	// ErrInvalidFoldChunk indicates a negative fold partition size.
	ErrInvalidFoldChunk = errors.New("galaxy: fold chunk must not be negative")
)
