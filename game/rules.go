package game

// determineWinner fills the winner and the legal moves of a freshly built
// state. The end conditions are checked in this order and the first match
// ends the game:
//
//  1. a tracker stands on the fugitive's location: trackers win
//  2. the fugitive is to move and cannot: trackers win, if there are any
//  3. no tracker can move: the fugitive wins
//  4. the fugitive is to move and the schedule is used up: the fugitive wins
//
// Otherwise the legal moves are those of every remaining piece.
func (gs *GameState) determineWinner() {
	graph := gs.setup.Graph
	fugitiveTurn := gs.isRemaining(Fugitive)

	switch {
	case occupied(gs.trackers, gs.fugitive.Location()):
		gs.winner = gs.trackerPieces()
	case fugitiveTurn && len(gs.trackers) > 0 && !hasAnyMove(graph, gs.trackers, []Player{gs.fugitive}):
		gs.winner = gs.trackerPieces()
	case !hasAnyMove(graph, gs.trackers, gs.trackers):
		gs.winner = []Piece{Fugitive}
	case fugitiveTurn && len(gs.log) == len(gs.setup.Moves):
		gs.winner = []Piece{Fugitive}
	default:
		var players []Player
		for _, p := range gs.Remaining() {
			player, _ := gs.player(p)
			players = append(players, player)
		}
		gs.setMoves(MovesOf(graph, gs.trackers, players, gs.turnsLeft()))
		return
	}
	gs.setMoves(nil)
}

func (gs *GameState) setMoves(moves []Move) {
	gs.legal = make(map[Move]struct{}, len(moves))
	for _, m := range moves {
		gs.legal[m] = struct{}{}
	}
	gs.moves = sortedMoves(gs.legal)
}
