// Package template wraps the handlebars engine: partial registration,
// compiled-template caching, and the helper surface exposed to authors.
package template

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aymerick/raymond"

	"git.home.luguber.info/inful/patternforge/internal/htmlfmt"
)

// Engine holds the partial source registry and a compiled-template cache
// keyed by partial id. Compilation is pure given fixed source text, so
// cached templates are reused across invocations.
type Engine struct {
	partials map[string]string
	compiled map[string]*raymond.Template
	format   htmlfmt.Options
}

// New creates an empty engine using fmt options for the prettify helper.
func New(format htmlfmt.Options) *Engine {
	return &Engine{
		partials: make(map[string]string),
		compiled: make(map[string]*raymond.Template),
		format:   format,
	}
}

// RegisterPartial stores source as a reusable partial under id,
// replacing any previous registration and dropping its cached compile.
func (e *Engine) RegisterPartial(id, source string) {
	e.partials[id] = source
	delete(e.compiled, id)
}

// HasPartial reports whether id is registered.
func (e *Engine) HasPartial(id string) bool {
	_, ok := e.partials[id]
	return ok
}

// Compile parses source with every registered partial attached.
func (e *Engine) Compile(source string) (*raymond.Template, error) {
	tpl, err := raymond.Parse(source)
	if err != nil {
		return nil, err
	}
	for name, partial := range e.partials {
		tpl.RegisterPartial(name, partial)
	}
	return tpl, nil
}

// Render compiles source and executes it against ctx.
func (e *Engine) Render(source string, ctx map[string]any) (string, error) {
	tpl, err := e.Compile(source)
	if err != nil {
		return "", err
	}
	return tpl.Exec(ctx)
}

// RenderPartial executes the partial registered under id against ctx,
// compiling it on first use.
func (e *Engine) RenderPartial(id string, ctx map[string]any) (string, error) {
	tpl, ok := e.compiled[id]
	if !ok {
		source, exists := e.partials[id]
		if !exists {
			return "", fmt.Errorf("unknown partial %q", id)
		}
		var err error
		tpl, err = e.Compile(source)
		if err != nil {
			return "", err
		}
		e.compiled[id] = tpl
	}
	return tpl.Exec(ctx)
}

// current is the engine addressed by the globally registered helpers.
// Raymond's helper registry is process-wide, so concurrent pipelines
// sharing the process must be serialized by the caller.
var (
	current    *Engine
	helpersReg sync.Once
)

// Activate installs e as the engine behind the author-facing helpers
// and registers those helpers on first use.
func Activate(e *Engine) {
	current = e
	helpersReg.Do(registerHelpers)
}

func registerHelpers() {
	// material: render a registered partial by dotted name with the
	// merged context, optionally extended by a caller-supplied hash.
	raymond.RegisterHelper("material", func(_ interface{}, options *raymond.Options) raymond.SafeString {
		if current == nil {
			return ""
		}
		name, _ := options.Param(0).(string)
		ctx := map[string]any{}
		if frame, ok := options.Ctx().(map[string]any); ok {
			for k, v := range frame {
				ctx[k] = v
			}
		}
		if len(options.Params()) > 1 {
			if extra, ok := options.Param(1).(map[string]any); ok {
				for k, v := range extra {
					ctx[k] = v
				}
			}
		}
		out, err := current.RenderPartial(name, ctx)
		if err != nil {
			return raymond.SafeString(fmt.Sprintf("<!-- material %q: %v -->", name, err))
		}
		return raymond.SafeString(out)
	})

	// json: serialize a context value.
	raymond.RegisterHelper("json", func(_ interface{}, options *raymond.Options) raymond.SafeString {
		raw, err := json.Marshal(options.Param(0))
		if err != nil {
			return ""
		}
		return raymond.SafeString(raw)
	})

	// prettify: format an HTML string with the configured options.
	raymond.RegisterHelper("prettify", func(_ interface{}, options *raymond.Options) raymond.SafeString {
		if current == nil {
			return ""
		}
		value, _ := options.Param(0).(string)
		return raymond.SafeString(htmlfmt.Format(value, current.format))
	})
}
