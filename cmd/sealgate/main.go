package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

func main() {
	app := &cli.App{
		Name:  "sealgate",
		Usage: "seal and open files with IETF ChaCha20-Poly1305",
		Commands: []*cli.Command{
			keygenCommand,
			sealCommand,
			openCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal().Err(err).Msg("sealgate failed")
	}
}
