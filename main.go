package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hersh/tetromino/internal/config"
	"github.com/hersh/tetromino/internal/logging"
	"github.com/hersh/tetromino/internal/tui"
)

// Usage:
//   go run . --seed 42 --randomizer bag YourName

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	p := tea.NewProgram(
		tui.NewModel(cfg, log),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("program exited")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
