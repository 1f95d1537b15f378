package domain

import "errors"

var (
	// ErrUnsolvable reports search exhaustion: no assignment satisfies the
	// row/col/box constraints. A normal outcome, not a fault.
	ErrUnsolvable = errors.New("puzzle is unsolvable")

	// ErrBadGrid reports input that violates the board preconditions
	// (wrong shape, values outside 0..9, or clues that already conflict).
	ErrBadGrid = errors.New("malformed grid")
)
