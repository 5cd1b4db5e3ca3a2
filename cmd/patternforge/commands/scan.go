package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"git.home.luguber.info/inful/patternforge/internal/catalog"
	"git.home.luguber.info/inful/patternforge/internal/config"
	"git.home.luguber.info/inful/patternforge/internal/util/sets"
)

// ScanCmd implements the 'scan' command: classify and list the material
// inventory without rendering anything.
type ScanCmd struct {
	out io.Writer
}

func (s *ScanCmd) output() io.Writer {
	if s.out == nil {
		return os.Stdout
	}
	return s.out
}

func (s *ScanCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sources := []struct {
		label    string
		patterns []string
	}{
		{"materials", cfg.Materials},
		{"blocks", cfg.Blocks},
		{"partials", cfg.Partials},
		{"views", cfg.Views},
	}

	w := s.output()
	for _, source := range sources {
		ix, err := catalog.Build(source.patterns)
		if err != nil {
			return err
		}
		known, err := catalog.KnownTopLevel(source.patterns)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s (%d) collections: %s\n",
			source.label, len(ix.Materials), strings.Join(sets.Sorted(known), ", "))
		for _, key := range ix.Keys() {
			node := ix.Tree[key]
			fmt.Fprintf(w, "  %s/\n", key)
			printNode(w, node, "    ")
		}
	}
	return nil
}

func printNode(w io.Writer, node *catalog.Node, indent string) {
	for _, key := range node.Keys() {
		switch item := node.Items[key].(type) {
		case *catalog.Node:
			fmt.Fprintf(w, "%s%s/\n", indent, key)
			printNode(w, item, indent+"  ")
		case *catalog.Material:
			fmt.Fprintf(w, "%s%s  (%s)\n", indent, key, item.ID)
		}
	}
}
