package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"manhunt/config"
	"manhunt/experiments"
	"manhunt/game"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}
	level, _ := settings.Level()
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(settings).Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("manhunt failed")
	}
}

func newApp(settings config.Settings) *cli.Command {
	setupFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:  "setup",
			Usage: "scenario YAML file",
			Value: settings.Setup,
		}
	}

	return &cli.Command{
		Name:  "manhunt",
		Usage: "hidden-information pursuit game engine",
		Commands: []*cli.Command{
			{
				Name:  "simulate",
				Usage: "play random games and write the outcomes as CSV",
				Flags: []cli.Flag{
					setupFlag(),
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "log every game",
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "results directory",
						Value: settings.ResultsDir,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Bool("verbose") {
						zerolog.SetGlobalLevel(zerolog.DebugLevel)
					}
					scenario, err := config.LoadScenario(cmd.String("setup"))
					if err != nil {
						return err
					}
					dir, _, err := experiments.Simulate(ctx, scenario, experiments.Options{
						Games:    settings.Games,
						Seed:     settings.Seed,
						MaxMoves: settings.MaxMoves,
						Workers:  settings.Workers,
					}, cmd.String("out"))
					if err != nil {
						return err
					}
					log.Info().Msgf("results written to %s", dir)
					return nil
				},
			},
			{
				Name:  "inspect",
				Usage: "print a scenario's players and opening moves",
				Flags: []cli.Flag{setupFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					scenario, err := config.LoadScenario(cmd.String("setup"))
					if err != nil {
						return err
					}
					return inspect(os.Stdout, scenario)
				},
			},
		},
	}
}

func inspect(w io.Writer, scenario *config.Scenario) error {
	gs, err := game.NewGameState(scenario.Setup, scenario.Fugitive, scenario.Trackers)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "scenario %s: %d stations, %d rounds\n",
		scenario.Name, len(scenario.Setup.Graph.Nodes()), scenario.Setup.Rounds())
	fmt.Fprintf(w, "%s\n", gs.Fugitive())
	for _, t := range gs.Trackers() {
		fmt.Fprintf(w, "%s\n", t)
	}
	moves := gs.LegalMoves()
	fmt.Fprintf(w, "%d opening moves:\n", len(moves))
	for _, m := range moves {
		fmt.Fprintf(w, "  %s\n", m)
	}
	return nil
}
