// Package htmlfmt pretty-prints rendered HTML before it is written to
// the output directory.
package htmlfmt

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Options controls output formatting.
type Options struct {
	// Indent is the number of indent units per nesting level.
	Indent int
	// Tabs selects tab indentation instead of spaces.
	Tabs bool
	// Enabled toggles formatting; when false Format returns input as-is.
	Enabled bool
}

// DefaultOptions matches the configuration defaults: two-space indent.
func DefaultOptions() Options {
	return Options{Indent: 2, Tabs: false, Enabled: true}
}

// voidElements never take closing tags and do not increase depth.
var voidElements = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Link: true, atom.Meta: true, atom.Source: true, atom.Track: true,
	atom.Wbr: true,
}

// rawTextElements have their text content emitted verbatim.
var rawTextElements = map[atom.Atom]bool{
	atom.Pre: true, atom.Script: true, atom.Style: true, atom.Textarea: true,
}

// Format re-indents an HTML fragment, one token per line, honoring the
// configured indent unit. Content of pre/script/style/textarea is left
// untouched. Input that fails to tokenize is returned unchanged.
func Format(src string, opts Options) string {
	if !opts.Enabled {
		return src
	}

	unit := strings.Repeat(" ", opts.Indent)
	if opts.Tabs {
		unit = strings.Repeat("\t", opts.Indent)
	}

	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(src))
	depth := 0
	rawDepth := 0

	writeLine := func(text string) {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(unit, depth))
		b.WriteString(text)
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		raw := string(z.Raw())
		var a atom.Atom
		if tt == html.StartTagToken || tt == html.EndTagToken || tt == html.SelfClosingTagToken {
			tagName, _ := z.TagName()
			a = atom.Lookup(tagName)
		}

		switch tt {
		case html.StartTagToken:
			if rawDepth > 0 {
				b.WriteString(raw)
				if rawTextElements[a] {
					rawDepth++
				}
				continue
			}
			writeLine(raw)
			if rawTextElements[a] {
				rawDepth++
				continue
			}
			if !voidElements[a] {
				depth++
			}
		case html.EndTagToken:
			if rawTextElements[a] && rawDepth > 0 {
				rawDepth--
				if rawDepth == 0 {
					b.WriteString(raw)
					continue
				}
			}
			if rawDepth > 0 {
				b.WriteString(raw)
				continue
			}
			if depth > 0 {
				depth--
			}
			writeLine(raw)
		case html.SelfClosingTagToken, html.CommentToken, html.DoctypeToken:
			if rawDepth > 0 {
				b.WriteString(raw)
				continue
			}
			writeLine(raw)
		case html.TextToken:
			if rawDepth > 0 {
				b.WriteString(raw)
				continue
			}
			text := strings.TrimSpace(raw)
			if text != "" {
				writeLine(text)
			}
		}
	}

	out := b.String()
	if out == "" {
		return src
	}
	return out + "\n"
}
