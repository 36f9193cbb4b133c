package game

import "fmt"

// Piece identifies a playing piece. Fugitive is the single evading piece,
// every other non-empty identity is a tracker.
type Piece string

const (
	Fugitive Piece = "fugitive"

	Red    Piece = "red"
	Green  Piece = "green"
	Blue   Piece = "blue"
	White  Piece = "white"
	Yellow Piece = "yellow"
)

// StandardTrackers are the tracker identities of the board game, in turn order.
var StandardTrackers = []Piece{Red, Green, Blue, White, Yellow}

func (p Piece) IsFugitive() bool {
	return p == Fugitive
}

func (p Piece) IsTracker() bool {
	return p != "" && p != Fugitive
}

// Player is a piece together with its location and tickets. Player is a value:
// At, Use and Give return modified copies and never touch the receiver.
type Player struct {
	piece    Piece
	location int
	tickets  map[Ticket]int
}

// NewPlayer copies tickets so the caller keeps ownership of its map.
func NewPlayer(piece Piece, location int, tickets map[Ticket]int) Player {
	return Player{
		piece:    piece,
		location: location,
		tickets:  copyTickets(tickets),
	}
}

func (p Player) Piece() Piece {
	return p.piece
}

func (p Player) Location() int {
	return p.location
}

func (p Player) IsFugitive() bool {
	return p.piece.IsFugitive()
}

func (p Player) IsTracker() bool {
	return p.piece.IsTracker()
}

// Tickets returns a copy of the player's tickets.
func (p Player) Tickets() TicketBoard {
	return TicketBoard(copyTickets(p.tickets))
}

func (p Player) Count(t Ticket) int {
	return p.tickets[t]
}

func (p Player) Has(t Ticket) bool {
	return p.tickets[t] > 0
}

func (p Player) HasAtLeast(t Ticket, n int) bool {
	return p.tickets[t] >= n
}

// At returns the player moved to location.
func (p Player) At(location int) Player {
	moved := p
	moved.tickets = copyTickets(p.tickets)
	moved.location = location
	return moved
}

// Use returns the player with one of each given ticket removed.
func (p Player) Use(tickets ...Ticket) Player {
	used := p
	used.tickets = copyTickets(p.tickets)
	for _, t := range tickets {
		if used.tickets[t] <= 0 {
			panic(fmt.Sprintf("%s has no %s ticket to use", p.piece, t))
		}
		used.tickets[t]--
	}
	return used
}

// Give returns the player with one of each given ticket added.
func (p Player) Give(tickets ...Ticket) Player {
	given := p
	given.tickets = copyTickets(p.tickets)
	for _, t := range tickets {
		given.tickets[t]++
	}
	return given
}

func (p Player) String() string {
	return fmt.Sprintf("%s@%d[%s]", p.piece, p.location, p.Tickets())
}

func copyTickets(tickets map[Ticket]int) map[Ticket]int {
	c := make(map[Ticket]int, len(tickets))
	for t, n := range tickets {
		if n > 0 {
			c[t] = n
		}
	}
	return c
}
