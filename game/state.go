package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState is one point of a game. It never changes once built: Advance
// returns a new GameState and leaves the receiver untouched, so a GameState
// may be read from several goroutines.
type GameState struct {
	setup     Setup
	remaining map[Piece]struct{} // Pieces still owed a move this round
	log       []LogEntry         // Fugitive travel log
	fugitive  Player
	trackers  []Player          // Trackers in turn order
	moves     []Move            // Legal moves, sorted
	legal     map[Move]struct{} // Same moves, for lookups
	winner    []Piece           // Empty while the game is undecided
}

var _ Board = (*GameState)(nil)

// NewGameState starts a game: the fugitive moves first and the log is empty.
func NewGameState(setup Setup, fugitive Player, trackers []Player) (*GameState, error) {
	return RestoreGameState(setup, []Piece{Fugitive}, nil, fugitive, trackers)
}

// RestoreGameState builds the state reached after log, with remaining still
// to move this round. The inputs are copied.
func RestoreGameState(setup Setup, remaining []Piece, log []LogEntry, fugitive Player, trackers []Player) (*GameState, error) {
	gs := &GameState{
		setup:     NewSetup(setup.Graph, setup.Moves),
		remaining: make(map[Piece]struct{}, len(remaining)),
		log:       append([]LogEntry(nil), log...),
		fugitive:  fugitive,
		trackers:  append([]Player(nil), trackers...),
	}
	for _, p := range remaining {
		gs.remaining[p] = struct{}{}
	}

	if err := gs.validate(); err != nil {
		return nil, err
	}

	gs.determineWinner()
	if len(gs.winner) == 0 && len(gs.moves) == 0 {
		return nil, invalidState(ErrStalledRound, "no legal move for %v", gs.Remaining())
	}
	return gs, nil
}

func (gs *GameState) validate() error {
	if gs.fugitive.Piece() == "" {
		return invalidState(ErrMissingFugitive, "no fugitive player")
	}
	if !gs.fugitive.IsFugitive() {
		return invalidState(ErrMissingFugitive, "fugitive slot holds %s", gs.fugitive.Piece())
	}

	pieces := make(map[Piece]struct{}, len(gs.trackers))
	locations := make(map[int]Piece, len(gs.trackers))
	for _, t := range gs.trackers {
		if t.Piece() == "" {
			return invalidState(ErrUnknownPiece, "tracker without identity at %d", t.Location())
		}
		if t.IsFugitive() {
			return invalidState(ErrDuplicateFugitive, "fugitive listed as a tracker")
		}
		if _, ok := pieces[t.Piece()]; ok {
			return invalidState(ErrDuplicateTracker, "%s", t.Piece())
		}
		pieces[t.Piece()] = struct{}{}
		if other, ok := locations[t.Location()]; ok {
			return invalidState(ErrTrackerOverlap, "%s and %s at %d", other, t.Piece(), t.Location())
		}
		locations[t.Location()] = t.Piece()
		if t.Has(Secret) || t.Has(Double) {
			return invalidState(ErrForbiddenTicket, "%s holds %s", t.Piece(), t.Tickets())
		}
	}

	if len(gs.setup.Moves) == 0 {
		return invalidState(ErrEmptySchedule, "setup has no moves")
	}
	if gs.setup.Graph == nil || len(gs.setup.Graph.Nodes()) == 0 {
		return invalidState(ErrEmptyGraph, "setup has no nodes")
	}
	if len(gs.log) > len(gs.setup.Moves) {
		return invalidState(ErrLogOverflow, "%d entries for %d moves", len(gs.log), len(gs.setup.Moves))
	}

	if len(gs.remaining) == 0 {
		return invalidState(ErrInvalidRemaining, "nobody left to move")
	}
	for p := range gs.remaining {
		if _, ok := gs.player(p); !ok {
			return invalidState(ErrUnknownPiece, "%s is not playing", p)
		}
	}
	if _, ok := gs.remaining[Fugitive]; ok && len(gs.remaining) > 1 {
		return invalidState(ErrInvalidRemaining, "fugitive shares a turn with trackers")
	}
	return nil
}

// Advance plays move and returns the resulting state. Only moves taken from
// this state's LegalMoves are accepted.
func (gs *GameState) Advance(move Move) (*GameState, error) {
	if _, ok := gs.legal[move]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, move)
	}
	if move.Piece.IsFugitive() {
		return gs.advanceFugitive(move)
	}
	return gs.advanceTracker(move)
}

func (gs *GameState) advanceFugitive(move Move) (*GameState, error) {
	log := append(append([]LogEntry(nil), gs.log...), logEntriesFor(gs.setup, len(gs.log), move)...)
	fugitive := gs.fugitive.Use(move.Tickets()...).At(move.Destination())

	// Hand the round to the trackers
	return RestoreGameState(gs.setup, gs.trackerPieces(), log, fugitive, gs.trackers)
}

func (gs *GameState) advanceTracker(move Move) (*GameState, error) {
	actor, _ := gs.player(move.Piece)
	moved := actor.At(move.Destination()).Use(move.Tickets()...)
	// Tickets spent by trackers go to the fugitive
	fugitive := gs.fugitive.Give(move.Tickets()...)

	trackers := make([]Player, len(gs.trackers))
	for i, t := range gs.trackers {
		if t.Piece() == moved.Piece() {
			trackers[i] = moved
		} else {
			trackers[i] = t
		}
	}

	var remaining []Piece
	var owed []Player
	for _, t := range trackers {
		if _, ok := gs.remaining[t.Piece()]; ok && t.Piece() != moved.Piece() {
			remaining = append(remaining, t.Piece())
			owed = append(owed, t)
		}
	}
	if !hasAnyMove(gs.setup.Graph, trackers, owed) {
		remaining = []Piece{Fugitive}
	}

	return RestoreGameState(gs.setup, remaining, gs.log, fugitive, trackers)
}

// player finds a participant by piece.
func (gs *GameState) player(piece Piece) (Player, bool) {
	if piece == gs.fugitive.Piece() {
		return gs.fugitive, true
	}
	for _, t := range gs.trackers {
		if t.Piece() == piece {
			return t, true
		}
	}
	return Player{}, false
}

func (gs *GameState) trackerPieces() []Piece {
	pieces := make([]Piece, len(gs.trackers))
	for i, t := range gs.trackers {
		pieces[i] = t.Piece()
	}
	return pieces
}

func (gs *GameState) isRemaining(piece Piece) bool {
	_, ok := gs.remaining[piece]
	return ok
}

// turnsLeft is the number of fugitive steps the schedule still allows.
func (gs *GameState) turnsLeft() int {
	return len(gs.setup.Moves) - len(gs.log)
}

func (gs *GameState) Setup() Setup {
	return NewSetup(gs.setup.Graph, gs.setup.Moves)
}

func (gs *GameState) Players() []Piece {
	return append([]Piece{gs.fugitive.Piece()}, gs.trackerPieces()...)
}

// Remaining lists the pieces still owed a move, in turn order.
func (gs *GameState) Remaining() []Piece {
	var pieces []Piece
	for _, p := range gs.Players() {
		if gs.isRemaining(p) {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

func (gs *GameState) TrackerLocation(piece Piece) (int, bool) {
	for _, t := range gs.trackers {
		if t.Piece() == piece {
			return t.Location(), true
		}
	}
	return 0, false
}

func (gs *GameState) PlayerTickets(piece Piece) (TicketBoard, bool) {
	p, ok := gs.player(piece)
	if !ok {
		return nil, false
	}
	return p.Tickets(), true
}

func (gs *GameState) TravelLog() []LogEntry {
	return append([]LogEntry(nil), gs.log...)
}

func (gs *GameState) LegalMoves() []Move {
	return append([]Move(nil), gs.moves...)
}

func (gs *GameState) Winner() []Piece {
	return append([]Piece(nil), gs.winner...)
}

func (gs *GameState) IsOver() bool {
	return len(gs.winner) > 0
}

// Fugitive exposes the fugitive's full state, location included. It is not
// part of Board since the location is hidden from trackers.
func (gs *GameState) Fugitive() Player {
	return gs.fugitive
}

func (gs *GameState) Trackers() []Player {
	return append([]Player(nil), gs.trackers...)
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash remaining pieces
	for _, p := range gs.Remaining() {
		hasher.Write([]byte(p))
	}

	// Hash players and their tickets
	for _, p := range append([]Player{gs.fugitive}, gs.trackers...) {
		hasher.Write([]byte(p.Piece()))
		binary.Write(hasher, binary.LittleEndian, int64(p.Location()))
		for _, t := range Tickets() {
			binary.Write(hasher, binary.LittleEndian, int64(p.Count(t)))
		}
	}

	// Hash the log
	for _, e := range gs.log {
		binary.Write(hasher, binary.LittleEndian, int64(e.Ticket))
		binary.Write(hasher, binary.LittleEndian, int64(e.Location))
		binary.Write(hasher, binary.LittleEndian, e.Revealed)
	}

	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	return fmt.Sprintf("fugitive=%s trackers=%v remaining=%v log=%v winner=%v",
		gs.fugitive, gs.trackers, gs.Remaining(), gs.log, gs.winner)
}
