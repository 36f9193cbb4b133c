package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"manhunt/game"
	"manhunt/gamemaster"
)

type Option func(e *Engine)

// WithMaxMoves overrides MaxMoves. Non-positive values are ignored.
func WithMaxMoves(maxMoves int) Option {
	return func(e *Engine) {
		if maxMoves > 0 {
			e.maxMoves = maxMoves
		}
	}
}

// Engine feeds moves chosen by one controller per side into a game master
// until the game is decided.
type Engine struct {
	master   *gamemaster.GameMaster
	fugitive Controller
	trackers Controller
	maxMoves int
}

func LocalEngine(master *gamemaster.GameMaster, fugitive, trackers Controller, opts ...Option) *Engine {
	if master == nil || fugitive == nil || trackers == nil {
		panic("engine needs a game master and two controllers")
	}

	e := &Engine{
		master:   master,
		fugitive: fugitive,
		trackers: trackers,
		maxMoves: MaxMoves,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the game loop until there is a winner, the move limit is
// reached or ctx is done. Context and controller errors stop the run and are
// returned with the result so far.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	board := e.master.Board()
	result := Result{Hashes: []game.StateHash{board.Hash()}}

	log.Debug().Msgf("starting game with players %v", board.Players())

	for len(board.Winner()) == 0 && len(result.Moves) < e.maxMoves {
		if err := ctx.Err(); err != nil {
			return e.finish(result), err
		}

		controller := e.trackers
		if remaining := board.Remaining(); len(remaining) > 0 && remaining[0].IsFugitive() {
			controller = e.fugitive
		}

		move, err := controller.PickMove(ctx, board)
		if err != nil {
			return e.finish(result), fmt.Errorf("failed to pick move %d: %w", len(result.Moves)+1, err)
		}
		if err := e.master.ChooseMove(move); err != nil {
			return e.finish(result), fmt.Errorf("move %d: %w", len(result.Moves)+1, err)
		}

		board = e.master.Board()
		result.Moves = append(result.Moves, move)
		result.Hashes = append(result.Hashes, board.Hash())
	}

	result = e.finish(result)
	if len(result.Winner) > 0 {
		log.Debug().Msgf("game over after %d moves, winner: %v", len(result.Moves), result.Winner)
	} else {
		log.Warn().Msgf("stopped after %d moves without a winner", len(result.Moves))
	}
	return result, nil
}

func (e *Engine) finish(result Result) Result {
	board := e.master.Board()
	result.Winner = board.Winner()
	result.Log = board.TravelLog()
	return result
}
