package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func taxiLine(n int) *Map {
	m := NewMap()
	for i := 1; i < n; i++ {
		m.AddRoute(i, i+1, TaxiRoute)
	}
	return m
}

func mustAdvance(t *testing.T, gs *GameState, move Move) *GameState {
	t.Helper()
	next, err := gs.Advance(move)
	require.NoError(t, err, "Should accept %s", move)
	return next
}

func TestNewGameStateValidation(t *testing.T) {
	m := taxiLine(3)
	schedule := []bool{false}
	fugitive := NewPlayer(Fugitive, 1, map[Ticket]int{Taxi: 1})
	red := NewPlayer(Red, 3, map[Ticket]int{Taxi: 1})

	tests := []struct {
		name     string
		setup    Setup
		fugitive Player
		trackers []Player
		want     error
	}{
		{"missing fugitive", NewSetup(m, schedule), Player{}, []Player{red}, ErrMissingFugitive},
		{"fugitive misidentified", NewSetup(m, schedule), NewPlayer(Green, 1, nil), []Player{red}, ErrMissingFugitive},
		{"fugitive as tracker", NewSetup(m, schedule), fugitive, []Player{NewPlayer(Fugitive, 3, nil)}, ErrDuplicateFugitive},
		{"unnamed tracker", NewSetup(m, schedule), fugitive, []Player{NewPlayer("", 3, nil)}, ErrUnknownPiece},
		{"duplicate tracker", NewSetup(m, schedule), fugitive, []Player{red, NewPlayer(Red, 2, nil)}, ErrDuplicateTracker},
		{"overlapping trackers", NewSetup(m, schedule), fugitive, []Player{red, NewPlayer(Green, 3, nil)}, ErrTrackerOverlap},
		{"tracker with secret", NewSetup(m, schedule), fugitive, []Player{NewPlayer(Red, 3, map[Ticket]int{Secret: 1})}, ErrForbiddenTicket},
		{"tracker with double", NewSetup(m, schedule), fugitive, []Player{NewPlayer(Red, 3, map[Ticket]int{Double: 1})}, ErrForbiddenTicket},
		{"empty schedule", NewSetup(m, nil), fugitive, []Player{red}, ErrEmptySchedule},
		{"empty graph", NewSetup(NewMap(), schedule), fugitive, []Player{red}, ErrEmptyGraph},
		{"nil graph", NewSetup(nil, schedule), fugitive, []Player{red}, ErrEmptyGraph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, err := NewGameState(tt.setup, tt.fugitive, tt.trackers)

			require.Nil(t, gs)
			require.ErrorIs(t, err, ErrInvalidState)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGameWithoutTrackers(t *testing.T) {
	t.Run("fugitive able to move", func(t *testing.T) {
		gs, err := NewGameState(NewSetup(taxiLine(3), []bool{false}), NewPlayer(Fugitive, 1, map[Ticket]int{Taxi: 1}), nil)
		require.NoError(t, err)

		require.Equal(t, []Piece{Fugitive}, gs.Winner())
		require.Empty(t, gs.LegalMoves())
		require.Equal(t, []Piece{Fugitive}, gs.Players())
	})

	t.Run("fugitive without tickets", func(t *testing.T) {
		gs, err := NewGameState(NewSetup(taxiLine(3), []bool{false}), NewPlayer(Fugitive, 1, nil), nil)
		require.NoError(t, err)

		require.Equal(t, []Piece{Fugitive}, gs.Winner(), "Nobody else can win")
		require.Empty(t, gs.LegalMoves())
	})
}

func TestRestoreGameStateValidation(t *testing.T) {
	m := taxiLine(3)
	m.AddRoute(4, 5, TaxiRoute)
	setup := NewSetup(m, []bool{false})
	fugitive := NewPlayer(Fugitive, 1, map[Ticket]int{Taxi: 1})
	red := NewPlayer(Red, 3, map[Ticket]int{Taxi: 1})

	t.Run("empty remaining", func(t *testing.T) {
		_, err := RestoreGameState(setup, nil, nil, fugitive, []Player{red})
		require.ErrorIs(t, err, ErrInvalidRemaining)
	})

	t.Run("unknown remaining piece", func(t *testing.T) {
		_, err := RestoreGameState(setup, []Piece{Blue}, nil, fugitive, []Player{red})
		require.ErrorIs(t, err, ErrUnknownPiece)
	})

	t.Run("fugitive sharing a turn", func(t *testing.T) {
		_, err := RestoreGameState(setup, []Piece{Fugitive, Red}, nil, fugitive, []Player{red})
		require.ErrorIs(t, err, ErrInvalidRemaining)
	})

	t.Run("log longer than schedule", func(t *testing.T) {
		log := []LogEntry{Hidden(Taxi), Hidden(Taxi)}
		_, err := RestoreGameState(setup, []Piece{Fugitive}, log, fugitive, []Player{red})
		require.ErrorIs(t, err, ErrLogOverflow)
	})

	t.Run("remaining trackers stuck while others can move", func(t *testing.T) {
		stuck := NewPlayer(Red, 3, nil)
		green := NewPlayer(Green, 4, map[Ticket]int{Taxi: 1})

		_, err := RestoreGameState(setup, []Piece{Red}, []LogEntry{Hidden(Taxi)}, fugitive, []Player{stuck, green})
		require.ErrorIs(t, err, ErrStalledRound)
		require.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestGameStateQueries(t *testing.T) {
	fugitive := NewPlayer(Fugitive, 1, map[Ticket]int{Taxi: 2, Secret: 1})
	red := NewPlayer(Red, 4, map[Ticket]int{Taxi: 3})
	green := NewPlayer(Green, 5, map[Ticket]int{Taxi: 1})
	gs, err := NewGameState(NewSetup(taxiLine(6), []bool{false, true}), fugitive, []Player{red, green})
	require.NoError(t, err)

	require.Equal(t, []Piece{Fugitive, Red, Green}, gs.Players())
	require.Equal(t, []Piece{Fugitive}, gs.Remaining())
	require.Empty(t, gs.Winner())
	require.Empty(t, gs.TravelLog())
	require.Equal(t, []bool{false, true}, gs.Setup().Moves)

	location, ok := gs.TrackerLocation(Red)
	require.True(t, ok)
	require.Equal(t, 4, location)
	_, ok = gs.TrackerLocation(Fugitive)
	require.False(t, ok, "The fugitive is not a tracker")
	_, ok = gs.TrackerLocation(Blue)
	require.False(t, ok)

	tickets, ok := gs.PlayerTickets(Fugitive)
	require.True(t, ok)
	require.Equal(t, 2, tickets.Count(Taxi))
	require.Equal(t, 1, tickets.Count(Secret))
	require.Equal(t, 0, tickets.Count(Bus))
	_, ok = gs.PlayerTickets(Blue)
	require.False(t, ok)

	t.Run("returned values are copies", func(t *testing.T) {
		tickets[Taxi] = 99
		moves := gs.LegalMoves()
		moves[0] = Move{}
		setup := gs.Setup()
		setup.Moves[0] = true

		again, _ := gs.PlayerTickets(Fugitive)
		require.Equal(t, 2, again.Count(Taxi))
		require.NotEqual(t, Move{}, gs.LegalMoves()[0])
		require.False(t, gs.Setup().Moves[0])
	})
}

func TestFirstFugitiveMove(t *testing.T) {
	// 1 - 2 - 3 - 4 by bus, one tracker at 4 with a single bus ticket
	fugitive := NewPlayer(Fugitive, 1, map[Ticket]int{Bus: 2})
	red := NewPlayer(Red, 4, map[Ticket]int{Bus: 1})
	gs, err := NewGameState(NewSetup(busLine(), []bool{false, false}), fugitive, []Player{red})
	require.NoError(t, err)

	move := NewSingleMove(Fugitive, 1, Bus, 2)
	require.Contains(t, gs.LegalMoves(), move)

	next := mustAdvance(t, gs, move)

	require.Equal(t, []LogEntry{Hidden(Bus)}, next.TravelLog())
	require.Equal(t, []Piece{Red}, next.Remaining())
	require.Equal(t, 2, next.Fugitive().Location())
	tickets, _ := next.PlayerTickets(Fugitive)
	require.Equal(t, 1, tickets.Count(Bus))
	require.Equal(t, []Move{NewSingleMove(Red, 4, Bus, 3)}, next.LegalMoves())

	t.Run("trackers out of tickets lose", func(t *testing.T) {
		last := mustAdvance(t, next, NewSingleMove(Red, 4, Bus, 3))

		require.Equal(t, []Piece{Fugitive}, last.Winner())
		require.Empty(t, last.LegalMoves())
		tickets, _ := last.PlayerTickets(Fugitive)
		require.Equal(t, 2, tickets.Count(Bus), "Tracker's ticket should go to the fugitive")
		redTickets, _ := last.PlayerTickets(Red)
		require.Equal(t, 0, redTickets.Count(Bus))
	})

	t.Run("previous state is unchanged", func(t *testing.T) {
		require.Equal(t, 1, gs.Fugitive().Location())
		require.Empty(t, gs.TravelLog())
		require.Equal(t, []Piece{Fugitive}, gs.Remaining())
	})
}

func TestCapture(t *testing.T) {
	fugitive := NewPlayer(Fugitive, 1, map[Ticket]int{Taxi: 1})
	red := NewPlayer(Red, 3, map[Ticket]int{Taxi: 1})
	gs, err := NewGameState(NewSetup(taxiLine(3), []bool{false, false, false}), fugitive, []Player{red})
	require.NoError(t, err)

	gs = mustAdvance(t, gs, NewSingleMove(Fugitive, 1, Taxi, 2))
	captured := mustAdvance(t, gs, NewSingleMove(Red, 3, Taxi, 2))

	require.Equal(t, []Piece{Red}, captured.Winner())
	require.Empty(t, captured.LegalMoves())
	require.True(t, captured.IsOver())

	t.Run("no move after the game is over", func(t *testing.T) {
		_, err := captured.Advance(NewSingleMove(Fugitive, 2, Taxi, 1))
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("capture wins on a restored state", func(t *testing.T) {
		restored, err := RestoreGameState(NewSetup(taxiLine(3), []bool{false}), []Piece{Red}, []LogEntry{Hidden(Taxi)},
			NewPlayer(Fugitive, 2, nil), []Player{NewPlayer(Red, 2, map[Ticket]int{Taxi: 1}), NewPlayer(Green, 3, nil)})
		require.NoError(t, err)
		require.Equal(t, []Piece{Red, Green}, restored.Winner(), "All trackers should win whoever is to move")
	})
}

func TestFugitiveTrapped(t *testing.T) {
	// 1 is only connected to 2 and 3, both held by trackers
	m := NewMap()
	m.AddRoute(1, 2, TaxiRoute)
	m.AddRoute(1, 3, TaxiRoute)
	m.AddRoute(2, 4, TaxiRoute)
	m.AddRoute(3, 4, TaxiRoute)
	trackers := []Player{
		NewPlayer(Red, 2, map[Ticket]int{Taxi: 1}),
		NewPlayer(Green, 3, map[Ticket]int{Taxi: 1}),
	}

	t.Run("without secret ticket", func(t *testing.T) {
		gs, err := NewGameState(NewSetup(m, []bool{false}), NewPlayer(Fugitive, 1, map[Ticket]int{Taxi: 4}), trackers)
		require.NoError(t, err)

		require.Equal(t, []Piece{Red, Green}, gs.Winner())
		require.Empty(t, gs.LegalMoves())
	})

	t.Run("secret ticket does not pass trackers", func(t *testing.T) {
		gs, err := NewGameState(NewSetup(m, []bool{false}), NewPlayer(Fugitive, 1, map[Ticket]int{Secret: 2, Double: 1}), trackers)
		require.NoError(t, err)

		require.Equal(t, []Piece{Red, Green}, gs.Winner())
	})

	t.Run("free ferry with secret ticket", func(t *testing.T) {
		withFerry := NewMap()
		withFerry.AddRoute(1, 2, TaxiRoute)
		withFerry.AddRoute(1, 3, TaxiRoute)
		withFerry.AddRoute(1, 5, Ferry)
		gs, err := NewGameState(NewSetup(withFerry, []bool{false}), NewPlayer(Fugitive, 1, map[Ticket]int{Secret: 1}), trackers)
		require.NoError(t, err)

		require.Empty(t, gs.Winner())
		require.Equal(t, []Move{NewSingleMove(Fugitive, 1, Secret, 5)}, gs.LegalMoves())
	})
}

func TestScheduleExhausted(t *testing.T) {
	fugitive := NewPlayer(Fugitive, 1, map[Ticket]int{Taxi: 5})
	red := NewPlayer(Red, 5, map[Ticket]int{Taxi: 5})
	gs, err := NewGameState(NewSetup(taxiLine(5), []bool{false}), fugitive, []Player{red})
	require.NoError(t, err)

	gs = mustAdvance(t, gs, NewSingleMove(Fugitive, 1, Taxi, 2))
	require.Empty(t, gs.Winner())
	gs = mustAdvance(t, gs, NewSingleMove(Red, 5, Taxi, 4))

	require.Equal(t, []Piece{Fugitive}, gs.Winner())
	require.Empty(t, gs.LegalMoves())
}

func TestDoubleMoveLog(t *testing.T) {
	m := NewMap()
	m.AddRoute(1, 2, TaxiRoute)
	m.AddRoute(2, 3, BusRoute)
	m.AddRoute(4, 5, TaxiRoute)
	fugitive := NewPlayer(Fugitive, 1, map[Ticket]int{Taxi: 1, Bus: 1, Double: 1})
	red := NewPlayer(Red, 4, map[Ticket]int{Taxi: 1})
	gs, err := NewGameState(NewSetup(m, []bool{true, false, false}), fugitive, []Player{red})
	require.NoError(t, err)

	double := NewDoubleMove(Fugitive, 1, Taxi, 2, Bus, 3)
	require.Equal(t, []Move{NewSingleMove(Fugitive, 1, Taxi, 2), double}, gs.LegalMoves())

	next := mustAdvance(t, gs, double)

	require.Equal(t, []LogEntry{Reveal(Taxi, 2), Hidden(Bus)}, next.TravelLog(),
		"Each leg should fill its own schedule slot")
	require.Equal(t, 3, next.Fugitive().Location())
	tickets, _ := next.PlayerTickets(Fugitive)
	require.Equal(t, TicketBoard{}, tickets, "Both tickets and the double ticket should be spent")
	require.Equal(t, []Piece{Red}, next.Remaining())
}

func TestTrackerRound(t *testing.T) {
	m := taxiLine(2)
	m.AddRoute(3, 4, TaxiRoute)
	m.AddRoute(5, 6, TaxiRoute)
	fugitive := NewPlayer(Fugitive, 1, map[Ticket]int{Taxi: 3})
	red := NewPlayer(Red, 3, map[Ticket]int{Taxi: 2})
	green := NewPlayer(Green, 5, map[Ticket]int{Taxi: 2})
	gs, err := NewGameState(NewSetup(m, []bool{false, false, false}), fugitive, []Player{red, green})
	require.NoError(t, err)

	gs = mustAdvance(t, gs, NewSingleMove(Fugitive, 1, Taxi, 2))
	require.Equal(t, []Piece{Red, Green}, gs.Remaining())
	require.Equal(t, []Move{
		NewSingleMove(Green, 5, Taxi, 6),
		NewSingleMove(Red, 3, Taxi, 4),
	}, gs.LegalMoves())

	gs = mustAdvance(t, gs, NewSingleMove(Red, 3, Taxi, 4))
	require.Equal(t, []Piece{Green}, gs.Remaining(), "Red should not move twice in a round")
	_, err = gs.Advance(NewSingleMove(Red, 4, Taxi, 3))
	require.ErrorIs(t, err, ErrIllegalMove)

	gs = mustAdvance(t, gs, NewSingleMove(Green, 5, Taxi, 6))
	require.Equal(t, []Piece{Fugitive}, gs.Remaining(), "Round should end with the last tracker")
	require.Equal(t, []Piece{Fugitive, Red, Green}, gs.Players(), "Turn order should be kept")

	tickets, _ := gs.PlayerTickets(Fugitive)
	require.Equal(t, 4, tickets.Count(Taxi), "Fugitive should collect the trackers' tickets")

	t.Run("tracker blocking the last exit ends the round", func(t *testing.T) {
		// Green's only exit is 4, which red takes
		blocking := taxiLine(2)
		blocking.AddRoute(3, 4, TaxiRoute)
		blocking.AddRoute(5, 4, TaxiRoute)
		blocking.AddRoute(4, 6, TaxiRoute)
		gs, err := NewGameState(NewSetup(blocking, []bool{false, false, false}),
			NewPlayer(Fugitive, 1, map[Ticket]int{Taxi: 2}),
			[]Player{NewPlayer(Red, 3, map[Ticket]int{Taxi: 2}), NewPlayer(Green, 5, map[Ticket]int{Taxi: 1})})
		require.NoError(t, err)

		gs = mustAdvance(t, gs, NewSingleMove(Fugitive, 1, Taxi, 2))
		require.Equal(t, []Piece{Red, Green}, gs.Remaining())

		gs = mustAdvance(t, gs, NewSingleMove(Red, 3, Taxi, 4))
		require.Equal(t, []Piece{Fugitive}, gs.Remaining(), "Green has no move left from 5")
		require.Empty(t, gs.Winner())
		require.Equal(t, []Move{NewSingleMove(Fugitive, 2, Taxi, 1)}, gs.LegalMoves())
	})

	t.Run("stuck trackers are skipped", func(t *testing.T) {
		stuck := NewPlayer(Red, 3, nil)
		gs, err := NewGameState(NewSetup(m, []bool{false, false}), fugitive, []Player{stuck, green})
		require.NoError(t, err)

		gs = mustAdvance(t, gs, NewSingleMove(Fugitive, 1, Taxi, 2))
		require.Equal(t, []Piece{Red, Green}, gs.Remaining())
		require.Equal(t, []Move{NewSingleMove(Green, 5, Taxi, 6)}, gs.LegalMoves())

		gs = mustAdvance(t, gs, NewSingleMove(Green, 5, Taxi, 6))
		require.Equal(t, []Piece{Fugitive}, gs.Remaining())
	})
}

func TestAdvanceRejectsForeignMoves(t *testing.T) {
	fugitive := NewPlayer(Fugitive, 1, map[Ticket]int{Taxi: 2, Bus: 1})
	red := NewPlayer(Red, 5, map[Ticket]int{Taxi: 2})
	gs, err := NewGameState(NewSetup(taxiLine(5), []bool{false, false}), fugitive, []Player{red})
	require.NoError(t, err)
	next := mustAdvance(t, gs, NewSingleMove(Fugitive, 1, Taxi, 2))

	t.Run("move from another state", func(t *testing.T) {
		_, err := next.Advance(gs.LegalMoves()[0])
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("synthetic moves", func(t *testing.T) {
		for _, move := range []Move{
			{},
			NewSingleMove(Fugitive, 1, Bus, 2),
			NewSingleMove(Red, 5, Taxi, 3),
			NewDoubleMove(Fugitive, 1, Taxi, 2, Taxi, 3),
			NewSingleMove(Blue, 1, Taxi, 2),
		} {
			_, err := gs.Advance(move)
			require.ErrorIs(t, err, ErrIllegalMove, "Should reject %s", move)
		}
	})
}

// walkMap is a ring of ten stations with bus, underground and ferry shortcuts.
func walkMap() *Map {
	m := NewMap()
	for i := 1; i < 10; i++ {
		m.AddRoute(i, i+1, TaxiRoute)
	}
	m.AddRoute(10, 1, TaxiRoute)
	m.AddRoute(1, 4, BusRoute)
	m.AddRoute(4, 7, BusRoute)
	m.AddRoute(7, 10, BusRoute)
	m.AddRoute(2, 8, UndergroundRoute)
	m.AddRoute(5, 10, Ferry)
	return m
}

func TestInvariantsAlongGames(t *testing.T) {
	for offset := 0; offset < 5; offset++ {
		fugitive := NewPlayer(Fugitive, 1, StandardFugitiveTickets(2))
		trackers := []Player{
			NewPlayer(Red, 5, StandardTrackerTickets()),
			NewPlayer(Green, 8, StandardTrackerTickets()),
		}
		gs, err := NewGameState(NewSetup(walkMap(), RevealSchedule(6, 3, 6)), fugitive, trackers)
		require.NoError(t, err)

		steps := 0
		for step := 0; ; step++ {
			require.Less(t, step, 500, "Game should terminate")

			moves := gs.LegalMoves()
			if gs.IsOver() {
				require.Empty(t, moves, "Finished game should have no moves")
				break
			}
			require.NotEmpty(t, moves, "Undecided game should have moves")
			for _, tr := range gs.Trackers() {
				require.Zero(t, tr.Count(Secret))
				require.Zero(t, tr.Count(Double))
			}

			move := moves[(step+offset)%len(moves)]
			if move.Piece.IsFugitive() {
				steps += len(move.Tickets()) - (len(move.Tickets()) / 3)
			}
			before := gs.Hash()
			next := mustAdvance(t, gs, move)
			require.Equal(t, before, gs.Hash(), "Advance should not modify the state")
			require.Len(t, next.TravelLog(), steps)
			gs = next
		}
	}
}
