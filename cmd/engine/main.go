// Command engine runs a self-play negamax match from the console,
// printing each ply as it is found.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/negamax-chess/engine/api"
)

func main() {
	depth := flag.Int("depth", 4, "search depth in plies")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	log.Info().Int("depth", *depth).Msg("starting match")

	if err := api.PlayMatch(*depth, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}

	log.Info().Msg("match complete")
}
