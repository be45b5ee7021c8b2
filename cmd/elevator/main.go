// The elevator program drives a simulated car through a list of floor
// requests, one at a time.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"elevator-fsm/pkg/config"
	"elevator-fsm/pkg/elev"
	"elevator-fsm/pkg/fsm"
	"elevator-fsm/pkg/logger"
	"elevator-fsm/pkg/notify"
)

var (
	configFile = flag.String("config", "./config.toml",
		"Path to the TOML configuration file.")
	envFile = flag.String("env", ".env",
		"Path to a .env file with ELEVATOR_* overrides.")
	noPace = flag.Bool("nopace", false,
		"Run every request without waiting between steps.")
)

func main() {
	flag.Parse()

	conf, err := config.Load(*configFile, *envFile)
	if err != nil {
		logger.Get().Error().Err(err).Msg("loading configuration")
		os.Exit(1)
	}
	if *noPace {
		conf.Elevator.Pacing = false
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, conf, os.Stdout)
	if errors.Is(err, context.Canceled) {
		logger.Get().Info().Msg("interrupted")
		return
	}
	if err != nil {
		logger.Get().Error().Err(err).Msg("elevator stopped")
		stop()
		os.Exit(1)
	}
}

// run builds the elevator described by conf and feeds it the configured
// requests. Reference-style text goes to out when enabled.
func run(ctx context.Context, conf *config.Config, out io.Writer) error {
	level, err := logger.ParseLevel(conf.Log.Level)
	if err != nil {
		return err
	}
	log := logger.Configure(level)

	sinks := notify.Multi{notify.NewLog(log, zerolog.DebugLevel)}
	if conf.Log.Console {
		sinks = append(sinks, notify.NewConsole(out))
	}

	opts := append(conf.Options(), fsm.WithNotifier(sinks))
	e := fsm.New(opts...)

	log.Info().
		Int("start_floor", e.Floor()).
		Ints("requests", conf.Driver.Requests).
		Bool("pacing", conf.Elevator.Pacing).
		Msg("starting elevator")

	err = fsm.Run(ctx, e, conf.Driver.Requests)

	s := e.Snapshot()
	log.Info().
		Int("floor", s.Floor).
		Stringer("state", s.State).
		Uint64("served", s.Served).
		Msg("elevator finished")

	if s.State != elev.Idle {
		log.Warn().Stringer("state", s.State).Msg("elevator not idle on exit")
	}
	return err
}
