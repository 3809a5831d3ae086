// Package errkind provides the sentinel errors surfaced by the validator and
// round orchestrator, plus a wrapping type that attaches a detail string to
// a sentinel while staying transparent to errors.Is() and errors.As().
package errkind

import (
	"errors"
	"fmt"
)

// Validator error kinds, one per rejected operation shape.
var (
	ErrEmptySource           = errors.New("empty source square")
	ErrZeroLengthMove        = errors.New("zero length move")
	ErrWrongTurn             = errors.New("wrong turn")
	ErrDestinationOutOfRange = errors.New("destination out of range")

	ErrInvalidKingMove      = errors.New("invalid king move")
	ErrInvalidKingCastle    = errors.New("invalid king castle")
	ErrInvalidKingOperation = errors.New("invalid king operation")

	ErrInvalidQueenMove      = errors.New("invalid queen move")
	ErrInvalidQueenOperation = errors.New("invalid queen operation")

	ErrInvalidBishopMove      = errors.New("invalid bishop move")
	ErrInvalidBishopOperation = errors.New("invalid bishop operation")

	ErrInvalidRookMove      = errors.New("invalid rook move")
	ErrInvalidRookOperation = errors.New("invalid rook operation")

	ErrInvalidKnightMove      = errors.New("invalid knight move")
	ErrInvalidKnightOperation = errors.New("invalid knight operation")

	ErrInvalidPawnMove      = errors.New("invalid pawn move")
	ErrInvalidPawnPromote   = errors.New("invalid pawn promotion")
	ErrInvalidPawnOperation = errors.New("invalid pawn operation")

	ErrNullOperation  = errors.New("null operation")
	ErrDrawNotOffered = errors.New("draw not offered")
)

// Round error kinds, surfaced only after a tentative apply.
var (
	ErrKingLeftInCheck  = errors.New("king left in check")
	ErrInvalidDrawClaim = errors.New("invalid draw claim")
	ErrGameNotActive    = errors.New("game not active")
)

// OperationError wraps a sentinel error with a detail string for diagnostics
// (such as the offending coordinates or a rejected claim's counts), while
// remaining transparent to errors.Is and errors.As via Unwrap.
type OperationError struct {
	Err    error
	Detail string
}

// Error renders the sentinel message plus any detail.
func (e *OperationError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Detail)
}

// Unwrap exposes the sentinel for errors.Is/errors.As.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// Wrap attaches a detail string to a sentinel error.
func Wrap(sentinel error, detail string) error {
	return &OperationError{Err: sentinel, Detail: detail}
}

// Wrapf attaches a formatted detail string to a sentinel error.
func Wrapf(sentinel error, format string, args ...interface{}) error {
	return Wrap(sentinel, fmt.Sprintf(format, args...))
}
