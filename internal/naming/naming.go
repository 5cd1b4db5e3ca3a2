// Package naming derives canonical identifiers and display names from
// source file paths.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// orderingPrefix matches a leading run of digits, dots, and dashes used
// to force file ordering (e.g. "01-", "02.3-").
var orderingPrefix = regexp.MustCompile(`^[0-9.-]+`)

var titleCaser = cases.Title(language.English)

// Resolve returns the file name without extension, whitespace replaced
// with dashes. When preserveOrdering is false, a leading ordering prefix
// of digits, dots, and dashes is stripped.
func Resolve(path string, preserveOrdering bool) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.Join(strings.Fields(name), "-")
	if !preserveOrdering {
		name = orderingPrefix.ReplaceAllString(name, "")
	}
	return name
}

// TitleCase converts an identifier to a display name: words split on
// dashes and underscores, first letter of each word capitalized, the
// remainder lowercased.
func TitleCase(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_'
	})
	return titleCaser.String(strings.Join(words, " "))
}
