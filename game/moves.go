package game

import "sort"

// SingleMoves returns every single move player can make from source. Nodes
// occupied by a tracker are never a destination. A secret ticket reaches any
// adjacent node whatever transports connect it.
func SingleMoves(graph Graph, trackers []Player, player Player, source int) []Move {
	seen := make(map[Move]struct{})
	for _, leg := range legsFrom(graph, trackers, player, source) {
		seen[NewSingleMove(player.Piece(), source, leg.ticket, leg.destination)] = struct{}{}
	}
	return sortedMoves(seen)
}

// DoubleMoves returns every double move player can make from source with
// turnsLeft fugitive steps left in the schedule. Both legs are checked against
// the current tracker positions; a ticket used on both legs must be held twice.
func DoubleMoves(graph Graph, trackers []Player, player Player, source int, turnsLeft int) []Move {
	if !player.Has(Double) || turnsLeft < 2 {
		return nil
	}

	seen := make(map[Move]struct{})
	for _, first := range legsFrom(graph, trackers, player, source) {
		for _, second := range legsFrom(graph, trackers, player, first.destination) {
			if !canAfford(player, first.ticket, second.ticket) {
				continue
			}
			move := NewDoubleMove(player.Piece(), source, first.ticket, first.destination, second.ticket, second.destination)
			seen[move] = struct{}{}
		}
	}
	return sortedMoves(seen)
}

// MovesOf returns the single and double moves of every given player from
// their current locations.
func MovesOf(graph Graph, trackers []Player, players []Player, turnsLeft int) []Move {
	var moves []Move
	for _, p := range players {
		moves = append(moves, SingleMoves(graph, trackers, p, p.Location())...)
		moves = append(moves, DoubleMoves(graph, trackers, p, p.Location(), turnsLeft)...)
	}
	return moves
}

// hasAnyMove is MovesOf for callers that only need to know whether the result is empty.
func hasAnyMove(graph Graph, trackers []Player, players []Player) bool {
	for _, p := range players {
		// A double move needs a legal first leg, so single moves decide it.
		if len(legsFrom(graph, trackers, p, p.Location())) > 0 {
			return true
		}
	}
	return false
}

type leg struct {
	ticket      Ticket
	destination int
}

func legsFrom(graph Graph, trackers []Player, player Player, source int) []leg {
	var legs []leg
	for _, destination := range graph.AdjacentNodes(source) {
		if occupied(trackers, destination) {
			continue
		}
		for _, t := range graph.EdgeValue(source, destination) {
			if player.Has(t.RequiredTicket()) {
				legs = append(legs, leg{ticket: t.RequiredTicket(), destination: destination})
			}
		}
		if player.Has(Secret) {
			legs = append(legs, leg{ticket: Secret, destination: destination})
		}
	}
	return legs
}

func occupied(trackers []Player, location int) bool {
	for _, t := range trackers {
		if t.Location() == location {
			return true
		}
	}
	return false
}

func canAfford(player Player, first, second Ticket) bool {
	if first == second {
		return player.HasAtLeast(first, 2)
	}
	return player.Has(first) && player.Has(second)
}

func sortedMoves(set map[Move]struct{}) []Move {
	moves := make([]Move, 0, len(set))
	for m := range set {
		moves = append(moves, m)
	}
	sort.Slice(moves, func(i, j int) bool { return lessMove(moves[i], moves[j]) })
	return moves
}
