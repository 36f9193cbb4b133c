package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Side names the winning side of a game.
type Side string

const (
	FugitiveSide Side = "fugitive"
	TrackerSide  Side = "trackers"
	NoSide       Side = "none" // Stopped at the move limit
)

type GameMetric struct {
	Winner     Side
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	LogLength  int // Fugitive steps taken
	Reveals    int // Revealed log entries
}

type GameRecord struct {
	ID   int
	Seed uint64
	GameMetric
}

type Summary struct {
	Scenario     string
	Games        int
	FugitiveWins int
	TrackerWins  int
	Undecided    int
	MeanMoves    float64
	MeanDuration time.Duration
}

// Collector gathers game records from concurrent playouts.
type Collector interface {
	Add(record GameRecord)
	Records() []GameRecord
	Summarize(scenario string) Summary
}

type collector struct {
	mu           sync.Mutex
	records      []GameRecord
	fugitiveWins atomic.Int32
	trackerWins  atomic.Int32
	totalMoves   atomic.Int64
	totalTime    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Add(record GameRecord) {
	switch record.Winner {
	case FugitiveSide:
		c.fugitiveWins.Add(1)
	case TrackerSide:
		c.trackerWins.Add(1)
	}
	c.totalMoves.Add(int64(record.TotalMoves))
	c.totalTime.Add(int64(record.Duration))

	c.mu.Lock()
	c.records = append(c.records, record)
	c.mu.Unlock()
}

// Records returns the collected records ordered by ID.
func (c *collector) Records() []GameRecord {
	c.mu.Lock()
	records := append([]GameRecord(nil), c.records...)
	c.mu.Unlock()

	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

func (c *collector) Summarize(scenario string) Summary {
	c.mu.Lock()
	games := len(c.records)
	c.mu.Unlock()

	s := Summary{
		Scenario:     scenario,
		Games:        games,
		FugitiveWins: int(c.fugitiveWins.Load()),
		TrackerWins:  int(c.trackerWins.Load()),
	}
	s.Undecided = games - s.FugitiveWins - s.TrackerWins
	if games > 0 {
		s.MeanMoves = float64(c.totalMoves.Load()) / float64(games)
		s.MeanDuration = time.Duration(c.totalTime.Load() / int64(games))
	}
	return s
}
