package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"manhunt/config"
	"manhunt/engine"
	"manhunt/experiments/metrics"
	"manhunt/gamemaster"
	"manhunt/meta"
)

type Options struct {
	Games    int
	Seed     uint64 // Game i uses seeds Seed+2i and Seed+2i+1
	MaxMoves int
	Workers  int // Games played at once, 1 when unset
}

func (o Options) withDefaults() Options {
	if o.Games <= 0 {
		o.Games = meta.GAMES
	}
	if o.MaxMoves <= 0 {
		o.MaxMoves = meta.MAX_MOVES
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	return o
}

// RunPlayouts plays random games from scenario and returns one record per
// game, ordered by game ID. Records depend only on the seeds, not on the
// number of workers.
func RunPlayouts(ctx context.Context, scenario *config.Scenario, opts Options) ([]metrics.GameRecord, error) {
	collector := metrics.NewCollector()
	if err := runPlayouts(ctx, scenario, opts.withDefaults(), collector); err != nil {
		return nil, err
	}
	return collector.Records(), nil
}

// Simulate runs the playouts and stores records and summary as CSV under
// dir. It returns the directory written to.
func Simulate(ctx context.Context, scenario *config.Scenario, opts Options, dir string) (string, metrics.Summary, error) {
	opts = opts.withDefaults()
	collector := metrics.NewCollector()

	log.Info().Msgf("starting %d playouts of %s with %d workers...", opts.Games, scenario.Name, opts.Workers)
	if err := runPlayouts(ctx, scenario, opts, collector); err != nil {
		return "", metrics.Summary{}, err
	}
	summary := collector.Summarize(scenario.Name)
	log.Info().Msgf("completed playouts: fugitive %d, trackers %d, undecided %d",
		summary.FugitiveWins, summary.TrackerWins, summary.Undecided)

	writer, err := metrics.NewWriter(dir, scenario.Name)
	if err != nil {
		return "", summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteGameRecords(collector.Records()); err != nil {
		return "", summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteSummary(summary); err != nil {
		return "", summary, fmt.Errorf("failed to write summary: %w", err)
	}
	log.Info().Msg("stored summary")

	return writer.Dir(), summary, nil
}

// runGame plays a single game with random controllers on both sides.
func runGame(ctx context.Context, scenario *config.Scenario, id int, seed uint64, maxMoves int) (metrics.GameRecord, error) {
	gm, err := gamemaster.New(scenario.Setup, scenario.Fugitive, scenario.Trackers)
	if err != nil {
		return metrics.GameRecord{}, err
	}
	e := engine.LocalEngine(gm, engine.NewRandomController(seed), engine.NewRandomController(seed+1),
		engine.WithMaxMoves(maxMoves))

	start := time.Now()
	result, err := e.Run(ctx)
	if err != nil {
		return metrics.GameRecord{}, fmt.Errorf("game %d: %w", id, err)
	}
	end := time.Now()

	winner := metrics.NoSide
	switch {
	case result.FugitiveWon():
		winner = metrics.FugitiveSide
	case result.TrackersWon():
		winner = metrics.TrackerSide
	}
	reveals := 0
	for _, entry := range result.Log {
		if entry.Revealed {
			reveals++
		}
	}

	return metrics.GameRecord{
		ID:   id,
		Seed: seed,
		GameMetric: metrics.GameMetric{
			Winner:     winner,
			StartTime:  start,
			EndTime:    end,
			Duration:   end.Sub(start),
			TotalMoves: len(result.Moves),
			LogLength:  len(result.Log),
			Reveals:    reveals,
		},
	}, nil
}
