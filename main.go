package main

import (
	"encoding/json"
	"flag"
	"os"

	"Meridian/internal/stability"
	"Meridian/internal/vessel"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	dataDir := flag.String("data", os.Getenv("VESSEL_DATA_DIR"), "vessel dataset directory")
	condPath := flag.String("condition", "", "loading condition YAML file")
	mode := flag.String("mode", "stability", "solve mode: stability, jackup or crane")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	flag.Parse()

	if *dataDir == "" || *condPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	v, err := vessel.Load(*dataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("load vessel dataset")
	}

	raw, err := os.ReadFile(*condPath)
	if err != nil {
		log.Fatal().Err(err).Msg("read loading condition")
	}
	var cond stability.Condition
	if err := yaml.Unmarshal(raw, &cond); err != nil {
		log.Fatal().Err(err).Msg("parse loading condition")
	}

	var out any
	switch *mode {
	case "stability":
		out, err = stability.Solve(v, cond)
	case "jackup":
		out, err = stability.SolveJackup(v, cond)
	case "crane":
		out, err = stability.SolveCrane(v, cond)
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown solve mode")
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", *mode).Msg("solve failed")
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("encode result")
	}
	log.Info().Str("vessel", v.Particulars.Name).Str("mode", *mode).Msg("solve complete")
}
