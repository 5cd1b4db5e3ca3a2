// Package globber resolves glob patterns against the file system. It
// wraps doublestar so the rest of the pipeline never touches matching
// semantics directly.
package globber

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Files resolves one or more patterns to the set of matching regular
// files, in pattern order then match order.
func Files(patterns []string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			clean := filepath.ToSlash(match)
			if _, ok := seen[clean]; ok {
				continue
			}
			seen[clean] = struct{}{}
			out = append(out, clean)
		}
	}
	return out, nil
}

// Dirs resolves a pattern to the set of matching directories. A trailing
// separator is tolerated (it forces directory-only matching in other
// glob dialects); matches are always filtered to directories here.
func Dirs(pattern string) ([]string, error) {
	pattern = strings.TrimSuffix(pattern, "/")
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		if info.IsDir() {
			dirs = append(dirs, filepath.ToSlash(match))
		}
	}
	return dirs, nil
}

// Base returns the longest prefix of pattern containing no glob
// metacharacters, i.e. the fixed directory the pattern is rooted at.
func Base(pattern string) string {
	parts := strings.Split(filepath.ToSlash(pattern), "/")
	var fixed []string
	for _, part := range parts {
		if strings.ContainsAny(part, "*?[{") {
			break
		}
		fixed = append(fixed, part)
	}
	return strings.Join(fixed, "/")
}
