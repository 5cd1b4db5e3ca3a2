// Package config defines the assembly configuration surface and its
// YAML loader.
package config

// Keys renames the collection trees as exposed in the rendering context.
type Keys struct {
	Materials string `yaml:"materials"`
	Blocks    string `yaml:"blocks"`
	Partials  string `yaml:"partials"`
	Views     string `yaml:"views"`
	Docs      string `yaml:"docs"`
}

// Format holds text-formatting options for output HTML. The zero value
// means formatting on, two-space indent.
type Format struct {
	Indent   int  `yaml:"indent"`
	Tabs     bool `yaml:"tabs"`
	Disabled bool `yaml:"disabled"`
}

// Config is the full configuration surface recognized by the assembler.
type Config struct {
	// Layout is the default layout id for views.
	Layout string `yaml:"layout"`
	// BlockLayout is the default layout id for material-block pages.
	BlockLayout string `yaml:"block_layout"`

	// Glob patterns per input category.
	Layouts        []string `yaml:"layouts"`
	LayoutIncludes []string `yaml:"layout_includes"`
	Views          []string `yaml:"views"`
	Materials      []string `yaml:"materials"`
	Blocks         []string `yaml:"blocks"`
	Partials       []string `yaml:"partials"`
	Data           []string `yaml:"data"`
	Docs           []string `yaml:"docs"`

	// Dest is the output directory.
	Dest string `yaml:"dest"`

	Keys   Keys   `yaml:"keys"`
	Format Format `yaml:"format"`

	// Log enables log-and-continue error handling.
	Log bool `yaml:"log"`
}

// Default returns the conventional configuration.
func Default() *Config {
	return &Config{
		Layout:         "default",
		BlockLayout:    "block",
		Layouts:        []string{"src/layouts/*.html"},
		LayoutIncludes: []string{"src/layouts/includes/*.html"},
		Views:          []string{"src/views/**/*.html"},
		Materials:      []string{"src/materials/**/*.html"},
		Blocks:         []string{"src/blocks/**/*.html"},
		Partials:       []string{"src/partials/**/*.html"},
		Data:           []string{"src/data/**/*.{json,yml}"},
		Docs:           []string{"src/docs/**/*.md"},
		Dest:           "dist",
		Keys: Keys{
			Materials: "materials",
			Blocks:    "blocks",
			Partials:  "partials",
			Views:     "views",
			Docs:      "docs",
		},
		Format: Format{Indent: 2},
	}
}

// normalize fills unset fields from defaults.
func (c *Config) normalize() {
	def := Default()
	if c.Layout == "" {
		c.Layout = def.Layout
	}
	if c.BlockLayout == "" {
		c.BlockLayout = def.BlockLayout
	}
	if len(c.Layouts) == 0 {
		c.Layouts = def.Layouts
	}
	if len(c.LayoutIncludes) == 0 {
		c.LayoutIncludes = def.LayoutIncludes
	}
	if len(c.Views) == 0 {
		c.Views = def.Views
	}
	if len(c.Materials) == 0 {
		c.Materials = def.Materials
	}
	if len(c.Blocks) == 0 {
		c.Blocks = def.Blocks
	}
	if len(c.Partials) == 0 {
		c.Partials = def.Partials
	}
	if len(c.Data) == 0 {
		c.Data = def.Data
	}
	if len(c.Docs) == 0 {
		c.Docs = def.Docs
	}
	if c.Dest == "" {
		c.Dest = def.Dest
	}
	if c.Keys.Materials == "" {
		c.Keys.Materials = def.Keys.Materials
	}
	if c.Keys.Blocks == "" {
		c.Keys.Blocks = def.Keys.Blocks
	}
	if c.Keys.Partials == "" {
		c.Keys.Partials = def.Keys.Partials
	}
	if c.Keys.Views == "" {
		c.Keys.Views = def.Keys.Views
	}
	if c.Keys.Docs == "" {
		c.Keys.Docs = def.Keys.Docs
	}
	if c.Format.Indent == 0 {
		c.Format.Indent = def.Format.Indent
	}
}
