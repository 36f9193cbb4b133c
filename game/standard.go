package game

// Standard board game values.
const (
	StandardRounds = 24
)

// StandardRevealTurns are the 1-based fugitive turns whose destination is revealed.
var StandardRevealTurns = []int{3, 8, 13, 18, 24}

// RevealSchedule builds a schedule of rounds fugitive steps revealing the
// given 1-based turns. Turns outside 1..rounds are ignored.
func RevealSchedule(rounds int, revealTurns ...int) []bool {
	if rounds < 0 {
		rounds = 0
	}
	schedule := make([]bool, rounds)
	for _, turn := range revealTurns {
		if turn >= 1 && turn <= rounds {
			schedule[turn-1] = true
		}
	}
	return schedule
}

// StandardSchedule is the 24 turn schedule of the board game.
func StandardSchedule() []bool {
	return RevealSchedule(StandardRounds, StandardRevealTurns...)
}

// StandardTrackerTickets is the allocation each tracker starts with.
func StandardTrackerTickets() map[Ticket]int {
	return map[Ticket]int{
		Taxi:        11,
		Bus:         8,
		Underground: 4,
	}
}

// StandardFugitiveTickets is the fugitive's allocation against the given
// number of trackers: one secret ticket per tracker.
func StandardFugitiveTickets(trackers int) map[Ticket]int {
	return map[Ticket]int{
		Taxi:        4,
		Bus:         3,
		Underground: 3,
		Double:      2,
		Secret:      trackers,
	}
}
