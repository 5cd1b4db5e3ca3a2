package assemble

// buildContext shallow-merges every data source into the single object
// handed to template evaluation, later sources overriding earlier ones:
// page front-matter data < global data files < per-material namespaced
// data < collection trees (configurable key names) < extra hash. Absent
// inputs are treated as empty. Rebuilt per page, never cached.
func (a *Assembler) buildContext(pageData, extra map[string]any) map[string]any {
	ctx := make(map[string]any)

	for k, v := range pageData {
		ctx[k] = v
	}
	for id, doc := range a.data {
		ctx[id] = doc
	}
	for nsID, slice := range a.materialData {
		ctx[nsID] = slice
	}

	keys := a.cfg.Keys
	if a.materials != nil {
		ctx[keys.Materials] = a.materials.Context()
	}
	if a.blocks != nil {
		ctx[keys.Blocks] = a.blocks.Context()
	}
	if a.partials != nil {
		ctx[keys.Partials] = a.partials.Context()
	}
	if a.views != nil {
		ctx[keys.Views] = a.views.Context()
	}
	if a.docs != nil {
		ctx[keys.Docs] = a.docs
	}

	for k, v := range extra {
		ctx[k] = v
	}
	return ctx
}
