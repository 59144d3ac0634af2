package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/sanity-io/litter"

	"github.com/lazharichir/showdown/analysis"
	"github.com/lazharichir/showdown/config"
	"github.com/lazharichir/showdown/server"
)

func main() {
	configPath := flag.String("config", "", "path to a yaml configuration file")
	handCount := flag.Int("hands", 0, "number of hands to draw (overrides config)")
	seed := flag.Int64("seed", 0, "random seed; 0 draws a fresh shuffle")
	outPath := flag.String("out", "", "analysis file path (overrides config)")
	serveAddr := flag.String("serve", "", "serve analyses over HTTP on this address instead of running once")
	debug := flag.Bool("debug", false, "log hand draws and dump evaluations")
	flag.Parse()

	plogger := &pterm.DefaultLogger
	if *debug {
		plogger = plogger.WithLevel(pterm.LogLevelDebug)
	}
	logger := slog.New(pterm.NewSlogHandler(plogger))

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error("loading configuration failed", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *handCount > 0 {
		cfg.Draw.Hands = *handCount
	}
	if *seed != 0 {
		cfg.Draw.Seed = *seed
	}
	if *outPath != "" {
		cfg.Output.Path = *outPath
	}

	if *serveAddr != "" {
		cfg.Server.Addr = *serveAddr
		s := server.NewServer(cfg, logger)
		if err := s.Start(cfg.Server.Addr); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	result, err := analysis.Run(cfg, nil, logger)
	if err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	if *debug {
		for _, hand := range result.Hands {
			litter.D(hand.PokerHand)
		}
	}

	fmt.Println(result.Report)

	if err := result.WriteFile(cfg.Output.Path); err != nil {
		logger.Error("saving the analysis failed", "error", err)
		os.Exit(1)
	}
	pterm.Success.Printfln("An analysis from a new poker hand simulation was saved in %s.", cfg.Output.Path)
}
