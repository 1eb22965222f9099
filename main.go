package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/robalobadob/bowling/internal/board"
	"github.com/robalobadob/bowling/internal/httpserver"
	"github.com/robalobadob/bowling/internal/prompt"
	"github.com/robalobadob/bowling/internal/session"
	"github.com/robalobadob/bowling/internal/store"
	"github.com/robalobadob/bowling/internal/writers"
)

const (
	playersFlag  = "players"
	exportFlag   = "export"
	watchFlag    = "watch"
	logLevelFlag = "log-level"
)

var build string
var semanticVersion = "v0.1.0-dev" + build

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.App{
		Name:    "bowling",
		Usage:   "Keep a ten-pin bowling score sheet for one or more players",
		Version: semanticVersion,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    playersFlag,
				Aliases: []string{"p"},
				Usage:   "Number of players (0 asks at startup)",
				EnvVars: []string{"BOWLING_PLAYERS"},
			},
			&cli.StringFlag{
				Name:    exportFlag,
				Aliases: []string{"o"},
				Usage:   "Write the finished score sheets as YAML to a file path or \"-\" (stdout)",
				EnvVars: []string{"BOWLING_EXPORT"},
			},
			&cli.StringFlag{
				Name:    watchFlag,
				Usage:   "Serve a read-only JSON scoreboard on this address, e.g. :5175",
				EnvVars: []string{"BOWLING_WATCH_ADDR"},
			},
			&cli.StringFlag{
				Name:  logLevelFlag,
				Usage: "zerolog level (debug, info, warn, error)",
				Value: getEnv("LOG_LEVEL", "info"),
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("bowling exited")
	}
}

func run(cCtx *cli.Context) error {
	if lvl, err := zerolog.ParseLevel(cCtx.String(logLevelFlag)); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	ctx := cCtx.Context

	st := store.NewMemoryStore()
	if addr := cCtx.String(watchFlag); addr != "" {
		srv := httpserver.New(st)
		go func() {
			log.Info().Str("addr", addr).Msg("starting spectator server")
			if err := srv.Start(addr); err != nil {
				log.Error().Err(err).Msg("spectator server exited")
			}
		}()
	}

	console := prompt.NewConsole(os.Stdin, os.Stderr)
	count := cCtx.Int(playersFlag)
	if count < 0 {
		return fmt.Errorf("players must not be negative: %d", count)
	}
	if count == 0 {
		n, err := console.Players(ctx)
		if err != nil {
			return fmt.Errorf("read player count: %w", err)
		}
		count = n
	}

	games, err := session.Seat(ctx, console, os.Stderr, count)
	if err != nil {
		return err
	}
	sess := session.New(games, console, board.Renderer{}, st, os.Stdout)
	if err := sess.Run(ctx); err != nil {
		return err
	}

	if path := cCtx.String(exportFlag); path != "" {
		return export(path, sess.Sheets())
	}
	return nil
}

func export(path string, sheets []board.Sheet) error {
	w := writers.Open(path)
	if err := board.WriteYAML(w, sheets); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close export %s: %w", path, err)
	}
	log.Info().Str("path", path).Int("sheets", len(sheets)).Msg("score sheets exported")
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
