package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/patternforge/internal/errors"
)

// Load reads a YAML configuration file, fills unset fields from
// defaults, and applies environment overrides. A `.env`/`.env.local`
// file is loaded first so overrides can live next to the project.
func Load(path string) (*Config, error) {
	// Missing env files are fine; existing process env always wins.
	_ = godotenv.Load(".env.local", ".env")

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "failed to read configuration")
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "invalid configuration YAML").
			WithContext("path", path)
	}

	cfg.normalize()
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides select fields from the environment.
func (c *Config) applyEnv() {
	if dest := os.Getenv("PATTERNFORGE_DEST"); dest != "" {
		c.Dest = dest
	}
	if v := os.Getenv("PATTERNFORGE_LOG"); v == "1" || v == "true" {
		c.Log = true
	}
}

// Starter is the commented configuration written by `patternforge init`.
const Starter = `# patternforge configuration
#
# Default layout id for views, and for material-block pages.
layout: default
block_layout: block

# Glob patterns per input category.
layouts:
  - src/layouts/*.html
layout_includes:
  - src/layouts/includes/*.html
views:
  - src/views/**/*.html
materials:
  - src/materials/**/*.html
blocks:
  - src/blocks/**/*.html
partials:
  - src/partials/**/*.html
data:
  - src/data/**/*.{json,yml}
docs:
  - src/docs/**/*.md

# Output directory. Destination directories are created on demand.
dest: dist

# Context key names for the collection trees.
keys:
  materials: materials
  blocks: blocks
  partials: partials
  views: views
  docs: docs

# Output formatting.
format:
  indent: 2
  tabs: false

# Log errors and continue instead of terminating on the first failure.
log: false
`
