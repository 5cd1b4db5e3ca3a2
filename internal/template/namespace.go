package template

import (
	"regexp"
)

// Namespace rewrites field references inside a fragment so they resolve
// against the fragment's own data slice. For every key in data, the
// tokens {{field}}, {{#field}} and {{/field}} (surrounding whitespace
// tolerated) become {{nsID.field}}, {{#nsID.field}} and {{/nsID.field}}.
//
// Multiple materials may declare same-named front-matter fields; without
// this rewrite a partial rendered against the merged context would pick
// up whichever same-named field won the merge. The rewrite happens once,
// before partial registration, and never touches the front-matter data
// itself.
func Namespace(content, nsID string, data map[string]any) string {
	if len(data) == 0 {
		return content
	}
	for field := range data {
		re := regexp.MustCompile(`\{\{\s*([#/]?)\s*` + regexp.QuoteMeta(field) + `\s*\}\}`)
		content = re.ReplaceAllString(content, "{{${1}"+nsID+"."+field+"}}")
	}
	return content
}
