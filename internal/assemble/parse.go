package assemble

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/patternforge/internal/catalog"
	"git.home.luguber.info/inful/patternforge/internal/errors"
	"git.home.luguber.info/inful/patternforge/internal/frontmatter"
	"git.home.luguber.info/inful/patternforge/internal/globber"
	"git.home.luguber.info/inful/patternforge/internal/markdown"
	"git.home.luguber.info/inful/patternforge/internal/naming"
	"git.home.luguber.info/inful/patternforge/internal/template"
)

// parseLayouts reads every layout as raw template text keyed by id.
func (a *Assembler) parseLayouts() {
	files, err := globber.Files(a.cfg.Layouts)
	if err != nil {
		a.fail(errors.GlobFailed(joinPatterns(a.cfg.Layouts), err))
		return
	}
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			a.fail(errors.ParseFailed(file, err))
			continue
		}
		a.layouts[naming.Resolve(file, false)] = string(raw)
	}
}

// parseLayoutIncludes registers layout-level includes as partials under
// their ids.
func (a *Assembler) parseLayoutIncludes() {
	files, err := globber.Files(a.cfg.LayoutIncludes)
	if err != nil {
		a.fail(errors.GlobFailed(joinPatterns(a.cfg.LayoutIncludes), err))
		return
	}
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			a.fail(errors.ParseFailed(file, err))
			continue
		}
		a.engine.RegisterPartial(naming.Resolve(file, false), string(raw))
	}
}

// parseData loads structured data files, exposed verbatim in the
// rendering context under their filename ids.
func (a *Assembler) parseData() {
	files, err := globber.Files(a.cfg.Data)
	if err != nil {
		a.fail(errors.GlobFailed(joinPatterns(a.cfg.Data), err))
		return
	}
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			a.fail(errors.ParseFailed(file, err))
			continue
		}
		var doc any
		switch filepath.Ext(file) {
		case ".json":
			err = json.Unmarshal(raw, &doc)
		default:
			err = yaml.Unmarshal(raw, &doc)
		}
		if err != nil {
			a.fail(errors.ParseFailed(file, err))
			continue
		}
		a.data[naming.Resolve(file, false)] = doc
	}
}

// parseMaterialSource indexes one material source and registers each
// fragment as a namespaced partial. Ids already registered by an earlier
// phase keep their first registration.
func (a *Assembler) parseMaterialSource(patterns []string, kind string) *catalog.Index {
	ix, err := catalog.Build(patterns)
	if err != nil {
		a.fail(err)
		return nil
	}
	for _, m := range ix.Materials {
		if a.engine.HasPartial(m.ID) {
			a.logger.Debug("partial already registered, keeping first",
				"id", m.ID, "kind", kind, "path", m.Path)
		} else {
			m.Content = template.Namespace(m.Content, m.NamespaceID(), m.Data)
			a.engine.RegisterPartial(m.ID, m.Content)
		}
		if _, exists := a.materialData[m.NamespaceID()]; !exists {
			a.materialData[m.NamespaceID()] = m.Data
		}
	}
	return ix
}

// indexOnly indexes a page source without registering partials.
func (a *Assembler) indexOnly(patterns []string, kind string) *catalog.Index {
	ix, err := catalog.Build(patterns)
	if err != nil {
		a.fail(err)
		return nil
	}
	a.logger.Debug("indexed source", "kind", kind, "items", len(ix.Materials))
	return ix
}

// parseDocs renders every documentation file to HTML, keyed by id.
func (a *Assembler) parseDocs() {
	files, err := globber.Files(a.cfg.Docs)
	if err != nil {
		a.fail(errors.GlobFailed(joinPatterns(a.cfg.Docs), err))
		return
	}
	for _, file := range files {
		doc, err := frontmatter.ReadFile(file)
		if err != nil {
			a.fail(errors.ParseFailed(file, err))
			continue
		}
		html, err := markdown.Render(doc.Body)
		if err != nil {
			a.fail(errors.ParseFailed(file, err))
			continue
		}
		id := naming.Resolve(file, false)
		a.docs[id] = map[string]any{
			"name":    naming.TitleCase(id),
			"content": html,
		}
	}
}

func joinPatterns(patterns []string) string {
	return strings.Join(patterns, ",")
}
