package game

import "fmt"

// LogEntry records one step of the fugitive. The location is only known
// for revealed entries.
type LogEntry struct {
	Ticket   Ticket
	Location int
	Revealed bool
}

func Hidden(ticket Ticket) LogEntry {
	return LogEntry{Ticket: ticket}
}

func Reveal(ticket Ticket, location int) LogEntry {
	return LogEntry{Ticket: ticket, Location: location, Revealed: true}
}

func (e LogEntry) String() string {
	if e.Revealed {
		return fmt.Sprintf("%s@%d", e.Ticket, e.Location)
	}
	return fmt.Sprintf("%s@?", e.Ticket)
}

// logEntriesFor returns the entries a fugitive move appends to a log of
// length logLen. Each leg is revealed or hidden by the schedule slot it fills.
func logEntriesFor(setup Setup, logLen int, move Move) []LogEntry {
	entry := func(slot int, ticket Ticket, destination int) LogEntry {
		if setup.IsRevealTurn(slot) {
			return Reveal(ticket, destination)
		}
		return Hidden(ticket)
	}

	switch move.Kind {
	case SingleMove:
		return []LogEntry{
			entry(logLen, move.Ticket1, move.Destination1),
		}
	case DoubleMove:
		return []LogEntry{
			entry(logLen, move.Ticket1, move.Destination1),
			entry(logLen+1, move.Ticket2, move.Destination2),
		}
	default:
		panic(fmt.Sprintf("unknown move kind %d", move.Kind))
	}
}
