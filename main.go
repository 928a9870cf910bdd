package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hersh/blockfall/internal/config"
	"github.com/hersh/blockfall/internal/game"
	"github.com/hersh/blockfall/internal/tui"
)

func main() {
	envFile := flag.String("env", config.DefaultEnvFile, "dotenv file with BLOCKFALL_* settings")
	width := flag.Int("width", 0, "field width in cells (overrides config)")
	height := flag.Int("height", 0, "field height in cells (overrides config)")
	seed := flag.Int64("seed", 0, "piece bag seed (overrides config, 0 = keep)")
	logFile := flag.String("log", "", "write debug logs to this file (overrides config)")
	dumpState := flag.Bool("state", false, "print the final session state as JSON on exit")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *width != 0 {
		cfg.Width = *width
	}
	if *height != 0 {
		cfg.Height = *height
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI, so logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "blockfall")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg.Seed = cfg.ResolveSeed()
	session := game.New(cfg)
	log.Printf("session start: %dx%d seed=%d", cfg.Width, cfg.Height, cfg.Seed)

	p := tea.NewProgram(
		tui.NewModel(session),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *dumpState {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(session.Snapshot()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
