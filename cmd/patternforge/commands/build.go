package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/patternforge/internal/assemble"
	"git.home.luguber.info/inful/patternforge/internal/config"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Dest string `short:"d" help:"Override the configured output directory"`
	Log  bool   `help:"Log errors and continue instead of terminating on first failure"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if b.Dest != "" {
		cfg.Dest = b.Dest
	}
	if b.Log {
		cfg.Log = true
	}

	slog.Info("Starting pattern library assembly", "dest", cfg.Dest)
	assemble.New(assemble.Options{Config: cfg}).Run()
	return nil
}
