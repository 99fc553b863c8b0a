package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/Momofil31/AlphaBetaChess/bots"
	"github.com/Momofil31/AlphaBetaChess/config"
	"github.com/Momofil31/AlphaBetaChess/storage"
)

var (
	depthFlag   = flag.Int("depth", 0, "search depth, overrides SEARCH_DEPTH")
	pliesFlag   = flag.Int("plies", -1, "maximum plies to play, overrides MAX_PLIES")
	fenFlag     = flag.String("fen", "", "starting position, overrides START_FEN")
	askFlag     = flag.Bool("ask", false, "ask for a starting FEN on stdin")
	backendFlag = flag.String("backend", "", "rules backend (notnil or dragon), overrides RULES_BACKEND")
	archiveFlag = flag.String("archive", "", "BadgerDB directory to record the game in, overrides ARCHIVE_PATH")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	applyFlags(cfg)

	logger := config.NewLogger(cfg.Logs, os.Stderr)
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	fen := cfg.Engine.StartFEN
	if *askFlag {
		fen = askFEN(bufio.NewReader(os.Stdin), os.Stdout, fen)
	}
	pos, err := openStart(cfg.Engine.Backend, fen, os.Stdout, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot set up the initial position")
	}

	bot := bots.NewAlphaBetaBot(cfg.Engine.Depth)
	bot.Logger = logger

	rec := storage.NewGameRecord(pos.FEN(), cfg.Engine.Depth, cfg.Engine.Backend)
	rec.Result = play(pos, bot, cfg.Engine.MaxPlies, os.Stdout, rec)
	rec.FinalFEN = pos.FEN()
	logger.Info().
		Str("result", rec.Result).
		Int("plies", len(rec.Moves)).
		Str("fen", rec.FinalFEN).
		Msg("game over")

	if cfg.Archive.Path == "" {
		return
	}
	archive, err := storage.Open(cfg.Archive.Path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Archive.Path).Msg("cannot open archive")
	}
	defer archive.Close()
	if err := archive.SaveGame(rec); err != nil {
		logger.Error().Err(err).Msg("saving game record")
		return
	}
	logger.Info().Str("id", rec.ID).Str("path", cfg.Archive.Path).Msg("game recorded")
}

func applyFlags(cfg *config.Config) {
	if *depthFlag != 0 {
		cfg.Engine.Depth = *depthFlag
	}
	if *pliesFlag >= 0 {
		cfg.Engine.MaxPlies = *pliesFlag
	}
	if *fenFlag != "" {
		cfg.Engine.StartFEN = *fenFlag
	}
	if *backendFlag != "" {
		cfg.Engine.Backend = *backendFlag
	}
	if *archiveFlag != "" {
		cfg.Archive.Path = *archiveFlag
	}
}
