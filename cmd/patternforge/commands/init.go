package commands

import (
	"fmt"
	"os"

	"git.home.luguber.info/inful/patternforge/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing configuration file"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	if _, err := os.Stat(root.Config); err == nil && !i.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", root.Config)
	}
	if err := os.WriteFile(root.Config, []byte(config.Starter), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Printf("Wrote %s\n", root.Config)
	return nil
}
