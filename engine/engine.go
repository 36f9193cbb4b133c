package engine

import (
	"context"

	"manhunt/game"
	"manhunt/meta"
)

const MaxMoves = meta.MAX_MOVES

// Controller chooses moves for one side of the game. PickMove is only called
// while the board has legal moves for that side.
type Controller interface {
	PickMove(ctx context.Context, board game.Board) (game.Move, error)
}

// ControllerFunc adapts a function to a Controller.
type ControllerFunc func(ctx context.Context, board game.Board) (game.Move, error)

func (f ControllerFunc) PickMove(ctx context.Context, board game.Board) (game.Move, error) {
	return f(ctx, board)
}

// Result describes a finished run. Winner is empty when the run stopped at
// the move limit.
type Result struct {
	Winner []game.Piece
	Moves  []game.Move
	Log    []game.LogEntry
	Hashes []game.StateHash // Hash of every state, the initial one first
}

// FugitiveWon reports whether the run ended with the fugitive winning.
func (r Result) FugitiveWon() bool {
	return len(r.Winner) == 1 && r.Winner[0].IsFugitive()
}

// TrackersWon reports whether the run ended with the trackers winning.
func (r Result) TrackersWon() bool {
	return len(r.Winner) > 0 && !r.Winner[0].IsFugitive()
}
