package assemble

import (
	"path/filepath"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/patternforge/internal/globber"
	"git.home.luguber.info/inful/patternforge/internal/naming"
)

// bodyMarker locates the layout token receiving page content.
var bodyMarker = regexp.MustCompile(`\{%\s*body\s*%\}`)

// WrapPage inserts page content into a layout at the body marker,
// replacing the first occurrence only. A layout without a marker is
// returned unchanged and the page content is dropped; callers log this
// rather than fail.
func WrapPage(pageContent, layoutText string) string {
	loc := bodyMarker.FindStringIndex(layoutText)
	if loc == nil {
		return layoutText
	}
	return layoutText[:loc[0]] + pageContent + layoutText[loc[1]:]
}

// HasBodyMarker reports whether the layout contains a body marker.
func HasBodyMarker(layoutText string) bool {
	return bodyMarker.MatchString(layoutText)
}

// defaultDest derives `<dest>/<collection>/<basename>.html` for a source
// file: the path of the file relative to its pattern's base directory,
// ordering prefix stripped from the leaf, extension normalized to .html.
func defaultDest(dest, file string, patterns []string) string {
	rel := ""
	for _, pattern := range patterns {
		base := globber.Base(pattern)
		if base == "" {
			continue
		}
		if r, err := filepath.Rel(base, file); err == nil && !strings.HasPrefix(r, "..") {
			rel = filepath.Dir(r)
			break
		}
	}
	if rel == "." {
		rel = ""
	}
	return filepath.Join(dest, filepath.FromSlash(rel), naming.Resolve(file, false)+".html")
}

// normalizeExt forces a .html extension on an explicit destination.
func normalizeExt(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".html"
}
