package catalog

import (
	"sort"
	"strings"

	"git.home.luguber.info/inful/patternforge/internal/errors"
	"git.home.luguber.info/inful/patternforge/internal/frontmatter"
	"git.home.luguber.info/inful/patternforge/internal/globber"
	"git.home.luguber.info/inful/patternforge/internal/markdown"
	"git.home.luguber.info/inful/patternforge/internal/naming"
)

// Index is the result of one indexing pass over a material source.
// Rebuilt from scratch on every run; indexing is idempotent for an
// unchanged file set.
type Index struct {
	// Tree maps top-level collection keys to collection nodes.
	Tree map[string]*Node
	// Data maps each material's namespace id (dots replaced by dashes)
	// to its front-matter data slice, independent of tree shape.
	Data map[string]map[string]any
	// Materials lists all indexed materials in file-match order.
	Materials []*Material

	keys []string
}

// Keys returns top-level collection keys in sorted order.
func (ix *Index) Keys() []string { return ix.keys }

// Context converts the whole tree to the map shape handed to templates.
func (ix *Index) Context() map[string]any {
	out := make(map[string]any, len(ix.Tree))
	for key, node := range ix.Tree {
		out[key] = node.Context()
	}
	return out
}

// Build indexes every file matched by patterns into a two-level
// collection tree. The build runs in two passes: the first creates stub
// nodes for every collection and sub-collection so nodes exist
// regardless of walk order, the second reads front matter and inserts
// populated materials.
func Build(patterns []string) (*Index, error) {
	files, err := globber.Files(patterns)
	if err != nil {
		return nil, errors.GlobFailed(strings.Join(patterns, ","), err)
	}
	known, err := KnownTopLevel(patterns)
	if err != nil {
		return nil, errors.GlobFailed(strings.Join(patterns, ","), err)
	}

	ix := &Index{
		Tree: make(map[string]*Node),
		Data: make(map[string]map[string]any),
	}

	// Pass 1: stub nodes.
	for _, file := range files {
		cl := Classify(file, known)
		if cl.SubCollection {
			top := ix.ensureTop(cl.Parent)
			subKey := naming.Resolve(cl.Collection, true)
			if _, ok := top.Items[subKey]; !ok {
				top.Items[subKey] = newNode(naming.TitleCase(naming.Resolve(cl.Collection, false)))
			}
			continue
		}
		ix.ensureTop(cl.Collection)
	}

	// Pass 2: populate.
	for _, file := range files {
		cl := Classify(file, known)
		doc, err := frontmatter.ReadFile(file)
		if err != nil {
			return nil, errors.ParseFailed(file, err)
		}

		m, err := newMaterial(file, cl, doc)
		if err != nil {
			return nil, err
		}

		if cl.SubCollection {
			topKey := naming.Resolve(cl.Parent, true)
			subKey := naming.Resolve(cl.Collection, true)
			sub, ok := ix.Tree[topKey].Items[subKey].(*Node)
			if !ok {
				return nil, keyCollision(topKey, subKey, file)
			}
			sub.Items[leafKey(m.Key)] = m
		} else {
			top := ix.Tree[naming.Resolve(cl.Collection, true)]
			if _, taken := top.Items[m.Key].(*Node); taken {
				return nil, keyCollision(naming.Resolve(cl.Collection, true), m.Key, file)
			}
			top.Items[m.Key] = m
		}

		ix.Data[m.NamespaceID()] = m.Data
		ix.Materials = append(ix.Materials, m)
	}

	ix.sort()
	return ix, nil
}

func (ix *Index) ensureTop(dir string) *Node {
	key := naming.Resolve(dir, true)
	node, ok := ix.Tree[key]
	if !ok {
		node = newNode(naming.TitleCase(naming.Resolve(dir, false)))
		ix.Tree[key] = node
	}
	return node
}

func newMaterial(file string, cl Classification, doc frontmatter.Document) (*Material, error) {
	leaf := naming.Resolve(file, false)

	var id, key, name string
	if cl.SubCollection {
		id = naming.Resolve(cl.Collection, false) + "." + leaf
		key = naming.Resolve(cl.Collection, true) + "." + leaf
		name = naming.TitleCase(leaf)
	} else {
		id = leaf
		key = leaf
		name = naming.TitleCase(id)
	}

	data := make(map[string]any, len(doc.Fields))
	for k, v := range doc.Fields {
		if k == "notes" {
			continue
		}
		data[k] = v
	}

	notes := ""
	if raw, ok := doc.Fields["notes"].(string); ok && raw != "" {
		rendered, err := markdown.Render(raw)
		if err != nil {
			return nil, errors.ParseFailed(file, err)
		}
		notes = rendered
	}

	return &Material{
		ID:      id,
		Key:     key,
		Name:    name,
		Notes:   notes,
		Data:    data,
		Content: doc.Body,
		Path:    file,
	}, nil
}

// keyCollision reports a material file and a sub-collection directory
// resolving to the same key under one collection. Neither entry can win
// without silently hiding the other, so indexing refuses the tree.
func keyCollision(collection, key, file string) *errors.AssembleError {
	return errors.New(errors.CategoryParse, errors.SeverityError,
		"material file and sub-collection directory share a key").
		WithContext("collection", collection).
		WithContext("key", key).
		WithContext("path", file)
}

// leafKey returns the portion of a dotted key after the first dot, or
// the key itself when undotted.
func leafKey(key string) string {
	if i := strings.Index(key, "."); i >= 0 {
		return key[i+1:]
	}
	return key
}

// sort orders every node's items: an explicit numeric `order` field
// ranks first (ascending), everything else follows alphabetically by
// key. Applied at every tree level.
func (ix *Index) sort() {
	ix.keys = make([]string, 0, len(ix.Tree))
	for key := range ix.Tree {
		ix.keys = append(ix.keys, key)
	}
	sort.Strings(ix.keys)
	for _, node := range ix.Tree {
		node.sort()
	}
}

func (n *Node) sort() {
	n.keys = make([]string, 0, len(n.Items))
	for key := range n.Items {
		n.keys = append(n.keys, key)
	}
	sort.Slice(n.keys, func(i, j int) bool {
		a, aOK := orderOf(n.Items[n.keys[i]])
		b, bOK := orderOf(n.Items[n.keys[j]])
		switch {
		case aOK && bOK:
			if a != b {
				return a < b
			}
			return n.keys[i] < n.keys[j]
		case aOK:
			return true
		case bOK:
			return false
		default:
			return n.keys[i] < n.keys[j]
		}
	})
	for _, item := range n.Items {
		if sub, ok := item.(*Node); ok {
			sub.sort()
		}
	}
}

func orderOf(item any) (float64, bool) {
	m, ok := item.(*Material)
	if !ok {
		return 0, false
	}
	switch v := m.Data["order"].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
