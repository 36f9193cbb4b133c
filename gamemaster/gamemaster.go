package gamemaster

import (
	"sync"

	"manhunt/game"
)

// Event tells observers what the last accepted move did to the game.
type Event int

const (
	MoveMade Event = iota
	GameOver
)

func (e Event) String() string {
	switch e {
	case MoveMade:
		return "move_made"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Observer is notified after every accepted move. It must not call
// ChooseMove from within OnModelChanged.
type Observer interface {
	OnModelChanged(board game.Board, event Event)
}

// GameMaster holds the current state of one game and notifies observers
// as moves are chosen.
type GameMaster struct {
	moveMu sync.Mutex   // Serializes ChooseMove
	mu     sync.RWMutex // Guards state and observers

	state     *game.GameState
	observers []registration
}

// New starts a game on setup. Construction errors wrap game.ErrInvalidState.
func New(setup game.Setup, fugitive game.Player, trackers []game.Player) (*GameMaster, error) {
	state, err := game.NewGameState(setup, fugitive, trackers)
	if err != nil {
		return nil, err
	}
	return FromState(state), nil
}

// FromState wraps an already built state, for games restored mid-way.
func FromState(state *game.GameState) *GameMaster {
	return &GameMaster{state: state}
}

// Board returns the current state.
func (gm *GameMaster) Board() game.Board {
	return gm.State()
}

// State returns the current state with the fugitive's location, which Board hides.
func (gm *GameMaster) State() *game.GameState {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.state
}

// ChooseMove plays move on the current state and notifies every observer in
// registration order. Moves outside the current legal moves are rejected with
// game.ErrIllegalMove and nobody is notified.
func (gm *GameMaster) ChooseMove(move game.Move) error {
	gm.moveMu.Lock()
	defer gm.moveMu.Unlock()

	next, err := gm.State().Advance(move)
	if err != nil {
		return err
	}

	gm.mu.Lock()
	gm.state = next
	observers := make([]Observer, len(gm.observers))
	for i, r := range gm.observers {
		observers[i] = r.observer
	}
	gm.mu.Unlock()

	event := MoveMade
	if next.IsOver() {
		event = GameOver
	}
	for _, o := range observers {
		o.OnModelChanged(next, event)
	}
	return nil
}
