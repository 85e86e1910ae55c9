package script

import "fmt"

// Registry holds the blocks and handler bindings of one page, indexed by id
// with document order preserved.
type Registry struct {
	byID     map[string]*Block
	ordered  []*Block
	bindings []HandlerBinding
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Block)}
}

// Add registers a block. A duplicate id is a document authoring error and
// is returned as such, not panicked: page content is user input.
func (r *Registry) Add(b *Block) error {
	if b.ID == "" {
		panic("script: block registered without an id")
	}
	if _, exists := r.byID[b.ID]; exists {
		return fmt.Errorf("duplicate script block id %q", b.ID)
	}
	b.Ordinal = len(r.ordered)
	r.byID[b.ID] = b
	r.ordered = append(r.ordered, b)
	return nil
}

// AddBinding registers a handler binding.
func (r *Registry) AddBinding(hb HandlerBinding) {
	r.bindings = append(r.bindings, hb)
}

// ByID returns the block with the given id, or nil.
func (r *Registry) ByID(id string) *Block {
	return r.byID[id]
}

// Blocks returns all blocks in document order.
func (r *Registry) Blocks() []*Block {
	return r.ordered
}

// Bindings returns all handler bindings in document order.
func (r *Registry) Bindings() []HandlerBinding {
	return r.bindings
}

// BindingFor returns the handler binding of the given element id.
func (r *Registry) BindingFor(elementID string) (HandlerBinding, bool) {
	for _, hb := range r.bindings {
		if hb.ElementID == elementID {
			return hb, true
		}
	}
	return HandlerBinding{}, false
}
