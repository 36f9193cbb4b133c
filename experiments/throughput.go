package experiments

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"manhunt/config"
	"manhunt/experiments/metrics"
)

// runPlayouts spreads the games over opts.Workers goroutines. The first
// failing game cancels the others and its error is returned.
func runPlayouts(ctx context.Context, scenario *config.Scenario, opts Options, collector metrics.Collector) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ids := make(chan int)
	var (
		wg      sync.WaitGroup
		errOnce sync.Once
		runErr  error
	)

	worker := func() {
		defer wg.Done()
		for id := range ids {
			seed := opts.Seed + 2*uint64(id-1)
			record, err := runGame(ctx, scenario, id, seed, opts.MaxMoves)
			if err != nil {
				errOnce.Do(func() {
					runErr = err
					cancel()
				})
				return
			}
			collector.Add(record)
			log.Debug().Msgf("completed game %d with winner: %s", id, record.Winner)
		}
	}

	wg.Add(opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		go worker()
	}

driver:
	for id := 1; id <= opts.Games; id++ {
		select {
		case ids <- id:
		case <-ctx.Done():
			break driver
		}
	}
	close(ids)
	wg.Wait()

	if runErr != nil {
		return runErr
	}
	return ctx.Err()
}
