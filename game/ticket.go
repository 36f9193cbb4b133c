package game

import (
	"fmt"
	"strings"
)

// Ticket is a resource consumed to travel along an edge of the map.
type Ticket int

const (
	Taxi Ticket = iota
	Bus
	Underground
	Double // Two consecutive moves as one turn
	Secret // Any transport, hides the transport used
)

var ticketNames = map[Ticket]string{
	Taxi:        "taxi",
	Bus:         "bus",
	Underground: "underground",
	Double:      "double",
	Secret:      "secret",
}

func (t Ticket) String() string {
	if name, ok := ticketNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ticket(%d)", int(t))
}

// ParseTicket converts a lowercase ticket name into a Ticket.
func ParseTicket(name string) (Ticket, error) {
	for t, n := range ticketNames {
		if n == strings.ToLower(strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown ticket %q", name)
}

// Tickets lists every ticket type in declaration order.
func Tickets() []Ticket {
	return []Ticket{Taxi, Bus, Underground, Double, Secret}
}

// Transport labels an edge of the map.
type Transport int

const (
	TaxiRoute Transport = iota
	BusRoute
	UndergroundRoute
	Ferry
)

var transportNames = map[Transport]string{
	TaxiRoute:        "taxi",
	BusRoute:         "bus",
	UndergroundRoute: "underground",
	Ferry:            "ferry",
}

func (t Transport) String() string {
	if name, ok := transportNames[t]; ok {
		return name
	}
	return fmt.Sprintf("transport(%d)", int(t))
}

// RequiredTicket is the ticket a player spends to use this transport.
// Ferries can only be taken with a secret ticket.
func (t Transport) RequiredTicket() Ticket {
	switch t {
	case TaxiRoute:
		return Taxi
	case BusRoute:
		return Bus
	case UndergroundRoute:
		return Underground
	case Ferry:
		return Secret
	default:
		panic(fmt.Sprintf("unknown transport %d", int(t)))
	}
}

// ParseTransport converts a lowercase transport name into a Transport.
func ParseTransport(name string) (Transport, error) {
	for t, n := range transportNames {
		if n == strings.ToLower(strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown transport %q", name)
}

// TicketBoard is a read-only view of the tickets held by a player.
type TicketBoard map[Ticket]int

// Count returns the number of tickets of the given type, 0 if none are held.
func (tb TicketBoard) Count(t Ticket) int {
	return tb[t]
}

func (tb TicketBoard) String() string {
	parts := make([]string, 0, len(tb))
	for _, t := range Tickets() {
		if n := tb[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", t, n))
		}
	}
	return strings.Join(parts, " ")
}
