package game

// Setup is the fixed configuration of a game: the map and the reveal schedule,
// one entry per fugitive step, true when that step's destination is revealed.
type Setup struct {
	Graph Graph
	Moves []bool
}

// NewSetup copies moves so the setup cannot be changed through the caller's slice.
func NewSetup(graph Graph, moves []bool) Setup {
	m := make([]bool, len(moves))
	copy(m, moves)
	return Setup{Graph: graph, Moves: m}
}

// Rounds is the number of fugitive steps in the schedule.
func (s Setup) Rounds() int {
	return len(s.Moves)
}

// IsRevealTurn reports whether the fugitive step at index slot is revealed.
func (s Setup) IsRevealTurn(slot int) bool {
	return slot >= 0 && slot < len(s.Moves) && s.Moves[slot]
}
