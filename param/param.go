package param

import (
	"flag"

	model "github.com/alceccentric/anilist-taste/model"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Params struct {
	Username string
	Kind     model.MediaKind
	OutDir   string
}

// GetParams resolves the run parameters from the command line. Missing or
// unusable arguments are fatal before any network activity happens.
func GetParams() Params {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded environment overrides from .env")
	}

	var outDir string
	flag.StringVar(&outDir, "out", ".", "directory report files are written to")
	flag.Parse()

	if flag.NArg() < 1 || flag.Arg(0) == "" {
		log.Fatal().Msg("No Anilist username provided.")
	}
	if flag.NArg() < 2 {
		log.Fatal().Msg("No media type provided. (ANIME/MANGA)")
	}

	kind, err := model.MediaKindFromString(flag.Arg(1))
	if err != nil {
		log.Fatal().Err(err).Msg("No usable media type provided. (ANIME/MANGA)")
	}

	return Params{
		Username: flag.Arg(0),
		Kind:     kind,
		OutDir:   outDir,
	}
}
