package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is wrapped by every construction error.
	ErrInvalidState = errors.New("invalid game state")
	// ErrIllegalMove is returned by Advance for a move outside the legal move set.
	ErrIllegalMove = errors.New("illegal move")
)

var (
	ErrMissingFugitive   = errors.New("missing fugitive")
	ErrDuplicateFugitive = errors.New("more than one fugitive")
	ErrDuplicateTracker  = errors.New("duplicate tracker")
	ErrTrackerOverlap    = errors.New("trackers share a location")
	ErrForbiddenTicket   = errors.New("tracker holds a secret or double ticket")
	ErrEmptySchedule     = errors.New("empty move schedule")
	ErrEmptyGraph        = errors.New("empty graph")
	ErrUnknownPiece      = errors.New("unknown piece")
	ErrInvalidRemaining  = errors.New("invalid remaining pieces")
	ErrLogOverflow       = errors.New("log longer than move schedule")
	ErrStalledRound      = errors.New("remaining trackers cannot move")
)

func invalidState(reason error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidState, reason, fmt.Sprintf(format, args...))
}
