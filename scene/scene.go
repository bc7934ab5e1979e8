// Package scene holds the host-side registry of editable shape layers
// materialized from kernel paths.
package scene

import (
	geom "github.com/Alpha-00/cavalry-types"
)

// LayerID identifies a layer in a Registry. The zero value is never a valid
// id.
type LayerID int

// Layer is an editable shape layer owned by the registry.
type Layer struct {
	ID   LayerID
	Name string
	Path *geom.Path
}

// Registry stores editable layers by id. It is not safe for concurrent use;
// the kernel's single-writer model extends to the registry.
type Registry struct {
	next   LayerID
	layers map[LayerID]*Layer
}

func NewRegistry() *Registry {
	return &Registry{layers: make(map[LayerID]*Layer)}
}

// CreateEditable materializes an editable layer from a snapshot of p. The
// registry takes a deep copy on handoff: mutating p afterwards does not
// affect the created layer.
func (r *Registry) CreateEditable(p *geom.Path, name string) LayerID {
	r.next++
	id := r.next
	r.layers[id] = &Layer{
		ID:   id,
		Name: name,
		Path: p.Clone(),
	}
	return id
}

// Layer returns the layer with the given id.
func (r *Registry) Layer(id LayerID) (*Layer, bool) {
	l, ok := r.layers[id]
	return l, ok
}

// Remove deletes the layer with the given id, reporting whether it existed.
func (r *Registry) Remove(id LayerID) bool {
	if _, ok := r.layers[id]; !ok {
		return false
	}
	delete(r.layers, id)
	return true
}
