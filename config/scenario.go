package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"manhunt/game"
)

var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario is a ready to play game description loaded from YAML.
type Scenario struct {
	Name     string
	Setup    game.Setup
	Fugitive game.Player
	Trackers []game.Player
}

type scenarioFile struct {
	Name     string       `yaml:"name"`
	Schedule []bool       `yaml:"schedule"`
	Rounds   int          `yaml:"rounds"`
	Reveal   []int        `yaml:"reveal"`
	Routes   []routeFile  `yaml:"routes"`
	Fugitive playerFile   `yaml:"fugitive"`
	Trackers []playerFile `yaml:"trackers"`
}

type routeFile struct {
	From      int    `yaml:"from"`
	To        int    `yaml:"to"`
	Transport string `yaml:"transport"`
}

type playerFile struct {
	Piece    string         `yaml:"piece"`
	Location int            `yaml:"location"`
	Tickets  map[string]int `yaml:"tickets"` // Standard allocation when omitted
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidScenario, fmt.Sprintf(format, args...))
}

// LoadScenario reads and parses the scenario at path.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScenario decodes a YAML scenario. Unknown fields are rejected.
func ParseScenario(data []byte) (*Scenario, error) {
	var f scenarioFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}

	schedule, err := f.schedule()
	if err != nil {
		return nil, err
	}

	if len(f.Routes) == 0 {
		return nil, invalid("no routes")
	}
	m := game.NewMap()
	for i, r := range f.Routes {
		transport, err := game.ParseTransport(r.Transport)
		if err != nil {
			return nil, invalid("route %d: %v", i+1, err)
		}
		if r.From == r.To {
			return nil, invalid("route %d: loop at %d", i+1, r.From)
		}
		m.AddRoute(r.From, r.To, transport)
	}

	if len(f.Trackers) == 0 {
		return nil, invalid("no trackers")
	}
	if f.Fugitive.Piece == "" {
		f.Fugitive.Piece = string(game.Fugitive)
	}
	fugitive, err := f.Fugitive.player(m, game.StandardFugitiveTickets(len(f.Trackers)))
	if err != nil {
		return nil, err
	}
	trackers := make([]game.Player, len(f.Trackers))
	for i, t := range f.Trackers {
		if t.Piece == "" {
			if i >= len(game.StandardTrackers) {
				return nil, invalid("tracker %d needs a piece", i+1)
			}
			t.Piece = string(game.StandardTrackers[i])
		}
		trackers[i], err = t.player(m, game.StandardTrackerTickets())
		if err != nil {
			return nil, err
		}
	}

	return &Scenario{
		Name:     f.Name,
		Setup:    game.NewSetup(m, schedule),
		Fugitive: fugitive,
		Trackers: trackers,
	}, nil
}

func (f scenarioFile) schedule() ([]bool, error) {
	switch {
	case len(f.Schedule) > 0 && (f.Rounds > 0 || len(f.Reveal) > 0):
		return nil, invalid("schedule and rounds are exclusive")
	case len(f.Schedule) > 0:
		return f.Schedule, nil
	case f.Rounds > 0:
		for _, turn := range f.Reveal {
			if turn < 1 || turn > f.Rounds {
				return nil, invalid("reveal turn %d outside 1..%d", turn, f.Rounds)
			}
		}
		return game.RevealSchedule(f.Rounds, f.Reveal...), nil
	default:
		return nil, invalid("missing schedule")
	}
}

func (p playerFile) player(m *game.Map, standard map[game.Ticket]int) (game.Player, error) {
	if _, ok := m.Stations[p.Location]; !ok {
		return game.Player{}, invalid("%s: unknown location %d", p.Piece, p.Location)
	}
	if p.Tickets == nil {
		return game.NewPlayer(game.Piece(p.Piece), p.Location, standard), nil
	}

	tickets := make(map[game.Ticket]int, len(p.Tickets))
	for name, n := range p.Tickets {
		t, err := game.ParseTicket(name)
		if err != nil {
			return game.Player{}, invalid("%s: %v", p.Piece, err)
		}
		if n < 0 {
			return game.Player{}, invalid("%s: negative %s count", p.Piece, t)
		}
		tickets[t] = n
	}
	return game.NewPlayer(game.Piece(p.Piece), p.Location, tickets), nil
}
