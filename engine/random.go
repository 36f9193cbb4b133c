package engine

import (
	"context"
	"errors"

	"golang.org/x/exp/rand"

	"manhunt/game"
)

var ErrNoLegalMoves = errors.New("no legal moves")

// RandomController picks uniformly among the legal moves. It is not safe
// for concurrent use; give every game its own controller.
type RandomController struct {
	rng *rand.Rand
}

func NewRandomController(seed uint64) *RandomController {
	return &RandomController{rng: rand.New(rand.NewSource(seed))}
}

func (c *RandomController) PickMove(ctx context.Context, board game.Board) (game.Move, error) {
	if err := ctx.Err(); err != nil {
		return game.Move{}, err
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrNoLegalMoves
	}
	return moves[c.rng.Intn(len(moves))], nil
}
