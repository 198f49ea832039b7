package main

import (
	"context"
	"flag"
	"isolation/config"
	"isolation/experiments"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "path to an experiment config file")
	games := flag.Int("games", 0, "games per match up, overrides the config")
	budget := flag.Duration("budget", 0, "time budget per move, overrides the config")
	seed := flag.Uint64("seed", 0, "base seed, overrides the config")
	out := flag.String("out", "", "output directory, overrides the config")
	throughput := flag.Int("throughput", 0, "measure search depth on this many positions instead of playing games")
	debug := flag.Bool("debug", false, "log every completed search depth")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *budget > 0 {
		cfg.Budget = *budget
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *out != "" {
		cfg.Output = *out
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var dir string
	if *throughput > 0 {
		dir, err = experiments.RunThroughput(ctx, cfg, *throughput)
	} else {
		dir, err = experiments.Run(ctx, cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	log.Info().Msgf("results stored in %s", dir)
}
