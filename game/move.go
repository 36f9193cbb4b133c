package game

import "fmt"

type MoveKind int

const (
	SingleMove MoveKind = iota + 1
	DoubleMove
)

// Move is either a single move (Ticket1 to Destination1) or a double move
// (Ticket1 to Destination1, then Ticket2 to Destination2). The second leg is
// zero for single moves. Move is comparable and used as a set key.
type Move struct {
	Kind         MoveKind
	Piece        Piece
	Source       int
	Ticket1      Ticket
	Destination1 int
	Ticket2      Ticket
	Destination2 int
}

func NewSingleMove(piece Piece, source int, ticket Ticket, destination int) Move {
	return Move{
		Kind:         SingleMove,
		Piece:        piece,
		Source:       source,
		Ticket1:      ticket,
		Destination1: destination,
	}
}

func NewDoubleMove(piece Piece, source int, ticket1 Ticket, destination1 int, ticket2 Ticket, destination2 int) Move {
	return Move{
		Kind:         DoubleMove,
		Piece:        piece,
		Source:       source,
		Ticket1:      ticket1,
		Destination1: destination1,
		Ticket2:      ticket2,
		Destination2: destination2,
	}
}

// Destination is where the piece ends up once the move is played.
func (m Move) Destination() int {
	switch m.Kind {
	case SingleMove:
		return m.Destination1
	case DoubleMove:
		return m.Destination2
	default:
		panic(fmt.Sprintf("unknown move kind %d", m.Kind))
	}
}

// Tickets lists the tickets spent by the move, in the order they are used.
// A double move also spends a Double ticket, listed last.
func (m Move) Tickets() []Ticket {
	switch m.Kind {
	case SingleMove:
		return []Ticket{m.Ticket1}
	case DoubleMove:
		return []Ticket{m.Ticket1, m.Ticket2, Double}
	default:
		panic(fmt.Sprintf("unknown move kind %d", m.Kind))
	}
}

func (m Move) String() string {
	switch m.Kind {
	case SingleMove:
		return fmt.Sprintf("%s %d -%s-> %d", m.Piece, m.Source, m.Ticket1, m.Destination1)
	case DoubleMove:
		return fmt.Sprintf("%s %d -%s-> %d -%s-> %d", m.Piece, m.Source, m.Ticket1, m.Destination1, m.Ticket2, m.Destination2)
	default:
		return fmt.Sprintf("move(kind=%d, piece=%s)", m.Kind, m.Piece)
	}
}

// lessMove orders moves by piece, kind, then legs, so move lists are stable.
func lessMove(a, b Move) bool {
	switch {
	case a.Piece != b.Piece:
		return a.Piece < b.Piece
	case a.Kind != b.Kind:
		return a.Kind < b.Kind
	case a.Source != b.Source:
		return a.Source < b.Source
	case a.Destination1 != b.Destination1:
		return a.Destination1 < b.Destination1
	case a.Ticket1 != b.Ticket1:
		return a.Ticket1 < b.Ticket1
	case a.Destination2 != b.Destination2:
		return a.Destination2 < b.Destination2
	default:
		return a.Ticket2 < b.Ticket2
	}
}
