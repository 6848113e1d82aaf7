// Command vectorgen produces one proof-input test vector: it samples the
// secret scalars, prints the labeled blocks to stdout, and writes the
// circuit loader file to the working directory.
package main

import (
	"os"

	"github.com/smallyu/go-zk-vectorgen/internal/vector"
	"github.com/smallyu/go-zk-vectorgen/logger"
)

const outputFile = "zokrates_input.txt"

func main() {
	log := logger.Logger().With().Str("component", "vectorgen").Logger()

	rec, err := vector.New().Generate()
	if err != nil {
		log.Fatal().Err(err).Msg("vector generation failed")
	}

	if err := rec.WriteConsole(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("console emission failed")
	}

	if err := rec.WriteInputFile(outputFile); err != nil {
		log.Fatal().Err(err).Msg("input file write failed")
	}
	log.Info().Str("file", outputFile).Msg("vector written")
}
