// Package catalog classifies glob-matched source files into a two-level
// collection/sub-collection taxonomy and builds the material index used
// for rendering.
//
// Known constraint: a collection and a sub-collection sharing the same
// basename at different tree depths cannot be told apart by the
// classifier; sub-collection directory names must not collide with
// top-level collection names.
package catalog

import "strings"

// Material is a reusable markup fragment.
type Material struct {
	// ID is the dotted path uniquely identifying the material
	// (`sub-collection.item` or `item`), ordering prefixes stripped.
	ID string
	// Key is ID with ordering numbers preserved in the sub-collection
	// segment but stripped in the leaf segment; used for tree lookup.
	Key string
	// Name is the title-cased display string derived from ID.
	Name string
	// Notes holds rendered documentation from the reserved `notes`
	// front-matter field.
	Notes string
	// Data holds front-matter fields excluding `notes`.
	Data map[string]any
	// Content is the trimmed body. It is rewritten in place during
	// namespacing, before partial registration.
	Content string
	// Path is the source file the material was read from.
	Path string
}

// NamespaceID returns the material id with dots replaced by dashes, the
// form under which its data slice is exposed in the rendering context.
func (m *Material) NamespaceID() string {
	return strings.ReplaceAll(m.ID, ".", "-")
}

// Node is a collection or sub-collection: a named, ordered set of items.
// Values in Items are *Material or *Node; nesting never exceeds two
// levels.
type Node struct {
	Name  string
	Items map[string]any

	keys []string
}

func newNode(name string) *Node {
	return &Node{Name: name, Items: make(map[string]any)}
}

// Keys returns item keys in sorted order. Valid after sort().
func (n *Node) Keys() []string {
	return n.keys
}

// Context converts the node to the plain map shape handed to templates.
func (n *Node) Context() map[string]any {
	items := make(map[string]any, len(n.Items))
	for key, item := range n.Items {
		switch v := item.(type) {
		case *Node:
			items[key] = v.Context()
		case *Material:
			items[key] = materialContext(v)
		}
	}
	return map[string]any{"name": n.Name, "items": items}
}

func materialContext(m *Material) map[string]any {
	ctx := map[string]any{
		"id":      m.ID,
		"name":    m.Name,
		"notes":   m.Notes,
		"content": m.Content,
	}
	for k, v := range m.Data {
		ctx[k] = v
	}
	return ctx
}
