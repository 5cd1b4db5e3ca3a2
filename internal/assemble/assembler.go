// Package assemble orchestrates the assembly pipeline: parsing layouts,
// data, materials, views and docs into a fresh state, then composing and
// writing one page per view and material-block.
package assemble

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"git.home.luguber.info/inful/patternforge/internal/catalog"
	"git.home.luguber.info/inful/patternforge/internal/config"
	"git.home.luguber.info/inful/patternforge/internal/errors"
	"git.home.luguber.info/inful/patternforge/internal/htmlfmt"
	"git.home.luguber.info/inful/patternforge/internal/template"
)

// Options configures one Assembler.
type Options struct {
	Config *config.Config
	// OnError, when set, receives every error instead of the default
	// log-or-terminate policy.
	OnError func(error)
	Logger  *slog.Logger
}

// Assembler owns the assembly state exclusively. The state is reset and
// fully rebuilt at the start of every Run; execution is single-threaded
// and synchronous throughout. Re-entrant invocation from two logical
// contexts sharing the process must be serialized by the caller (the
// template helper registry is process-wide).
type Assembler struct {
	cfg     *config.Config
	engine  *template.Engine
	handler *errors.Handler
	logger  *slog.Logger

	layouts      map[string]string
	data         map[string]any
	materials    *catalog.Index
	blocks       *catalog.Index
	partials     *catalog.Index
	views        *catalog.Index
	docs         map[string]any
	materialData map[string]map[string]any

	report *Report
}

// New creates an Assembler for one configuration.
func New(opts Options) *Assembler {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{
		cfg:     cfg,
		logger:  logger,
		handler: errors.NewHandler(opts.OnError, cfg.Log, logger),
	}
}

func (a *Assembler) formatOptions() htmlfmt.Options {
	return htmlfmt.Options{
		Indent:  a.cfg.Format.Indent,
		Tabs:    a.cfg.Format.Tabs,
		Enabled: !a.cfg.Format.Disabled,
	}
}

// Run executes one full pipeline: setup then assemble. All failures are
// routed to the single error-handling policy; files written before a
// failure remain on disk.
func (a *Assembler) Run() {
	a.reset()
	a.setup()
	a.assemble()

	if err := a.report.write(a.cfg.Dest); err != nil {
		a.fail(errors.WriteFailed(filepath.Join(a.cfg.Dest, "build-report.json"), err))
	}
	a.logger.Info("assembly complete",
		"run_id", a.report.RunID,
		"pages", a.report.PagesWritten,
		"errors", a.report.Errors)
}

// reset discards all state from a previous run.
func (a *Assembler) reset() {
	a.engine = template.New(a.formatOptions())
	template.Activate(a.engine)

	a.layouts = make(map[string]string)
	a.data = make(map[string]any)
	a.docs = make(map[string]any)
	a.materialData = make(map[string]map[string]any)
	a.materials, a.blocks, a.partials, a.views = nil, nil, nil, nil
	a.report = newReport()
}

// setup sequences the parsing phases. Helpers are registered by reset
// via template.Activate; material-partials are parsed before materials
// so their registrations win on id collisions.
func (a *Assembler) setup() {
	a.parseLayouts()
	a.parseLayoutIncludes()
	a.parseData()

	a.partials = a.parseMaterialSource(a.cfg.Partials, "partials")
	a.materials = a.parseMaterialSource(a.cfg.Materials, "materials")
	a.blocks = a.parseMaterialSource(a.cfg.Blocks, "blocks")

	a.views = a.indexOnly(a.cfg.Views, "views")
	a.parseDocs()

	if a.partials != nil {
		a.report.Partials = len(a.partials.Materials)
	}
	if a.materials != nil {
		a.report.Materials = len(a.materials.Materials)
	}
	if a.blocks != nil {
		a.report.Blocks = len(a.blocks.Materials)
	}
	if a.views != nil {
		a.report.Views = len(a.views.Materials)
	}
	a.report.Docs = len(a.docs)
}

// assemble renders every view and material-block page. Materials and
// material-partials are not rendered directly; they exist to be invoked
// from inside views.
func (a *Assembler) assemble() {
	if a.views != nil {
		for _, view := range a.views.Materials {
			a.renderPage(view, false)
		}
	}
	if a.blocks != nil {
		for _, block := range a.blocks.Materials {
			a.renderPage(block, true)
		}
	}
}

// renderPage runs the per-page pipeline: resolve layout, wrap, compile,
// build context, render, format, write.
func (a *Assembler) renderPage(page *catalog.Material, isBlock bool) {
	pageData := make(map[string]any, len(page.Data)+1)
	for k, v := range page.Data {
		pageData[k] = v
	}

	// Material-block flavor: self-render the fragment first so the page
	// can show the live fragment and its markup side by side.
	if isBlock {
		markup, err := a.engine.Render(page.Content, a.buildContext(pageData, nil))
		if err != nil {
			a.fail(errors.TemplateFailed(page.ID, err).WithContext("path", page.Path))
			return
		}
		pageData["block-markup"] = markup
	}

	layoutID := a.cfg.Layout
	if isBlock {
		layoutID = a.cfg.BlockLayout
	}
	if override, ok := pageData["layout"].(string); ok && override != "" {
		layoutID = override
	}
	layoutText, ok := a.layouts[layoutID]
	if !ok {
		a.fail(errors.New(errors.CategoryTemplate, errors.SeverityError, "unknown layout").
			WithContext("layout", layoutID).
			WithContext("path", page.Path))
		return
	}
	if !HasBodyMarker(layoutText) {
		a.logger.Debug("layout has no body marker; page content dropped",
			"layout", layoutID, "path", page.Path)
	}

	source := WrapPage(page.Content, layoutText)
	out, err := a.engine.Render(source, a.buildContext(pageData, nil))
	if err != nil {
		a.fail(errors.TemplateFailed(page.ID, err).WithContext("path", page.Path))
		return
	}
	out = htmlfmt.Format(out, a.formatOptions())

	patterns := a.cfg.Views
	if isBlock {
		patterns = a.cfg.Blocks
	}
	dest := defaultDest(a.cfg.Dest, page.Path, patterns)
	if override, ok := pageData["dest"].(string); ok && override != "" {
		dest = normalizeExt(override)
	}

	if !a.writeFile(dest, out, false) {
		return
	}
	if copyDest, ok := pageData["dest-copy"].(string); ok && copyDest != "" {
		a.writeFile(normalizeExt(copyDest), out, true)
	}
}

// writeFile writes content atomically, creating directories on demand.
// Copies count separately from pages in the build report.
func (a *Assembler) writeFile(path, content string, isCopy bool) bool {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		a.fail(errors.WriteFailed(path, err))
		return false
	}
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		a.fail(errors.WriteFailed(path, err))
		return false
	}
	if isCopy {
		a.report.recordCopy(path)
	} else {
		a.report.recordWrite(path)
	}
	a.logger.Debug("wrote page", "path", path)
	return true
}

// fail routes an error through the central policy and counts it.
func (a *Assembler) fail(err error) {
	a.report.Errors++
	a.handler.Handle(err)
}
