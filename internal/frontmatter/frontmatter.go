// Package frontmatter reads YAML metadata headers from content files.
package frontmatter

import (
	"bytes"
	"errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("frontmatter: closing delimiter is missing")

// Document is the result of reading a content file: parsed front-matter
// fields and the whitespace-trimmed body.
type Document struct {
	Fields map[string]any
	Body   string
}

// Split separates a `---` delimited YAML frontmatter block from the
// body. If the content does not start with a delimiter, had is false and
// body is the full input.
func Split(content []byte) (fm []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		// empty frontmatter block
		return []byte{}, content[start+len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		// closing delimiter at EOF without trailing newline
		tail := []byte(nl + "---")
		if bytes.HasSuffix(content[start:], tail) {
			end := len(content) - len(tail)
			return content[start : end+len(nl)], nil, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	end := start + idx + len(nl)
	bodyStart := start + idx + len(closeSeq)
	return content[start:end], content[bodyStart:], true, nil
}

// Parse splits content and unmarshals the frontmatter block, returning a
// Document with a trimmed body. Content without frontmatter yields empty
// Fields and the trimmed input as Body.
func Parse(content []byte) (Document, error) {
	fm, body, had, err := Split(content)
	if err != nil {
		return Document{}, err
	}

	doc := Document{Fields: map[string]any{}, Body: strings.TrimSpace(string(body))}
	if !had || len(fm) == 0 {
		return doc, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(fm, &fields); err != nil {
		return Document{}, err
	}
	if fields != nil {
		doc.Fields = fields
	}
	return doc, nil
}

// ReadFile reads and parses a content file from disk.
func ReadFile(path string) (Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return Parse(content)
}

func detectNewline(content []byte) string {
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			return "\r\n"
		}
		if content[i] == '\n' {
			return "\n"
		}
	}
	return "\n"
}
