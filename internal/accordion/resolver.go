package accordion

import "github.com/shhac/bellows/internal/dom"

// StructureResolver locates the trigger and content sub-elements of a
// container by structural marker. It is read-only and has no error
// conditions: an empty result is valid and callers handle zero matches
// gracefully.
type StructureResolver struct {
	cfg Config
}

// NewStructureResolver creates a resolver for the given configuration.
func NewStructureResolver(cfg Config) *StructureResolver {
	return &StructureResolver{cfg: cfg}
}

// FindTriggers returns every trigger-marked descendant of container in
// document order. By convention the first match is "the" trigger, but all
// matches participate in tagging and handler binding.
func (r *StructureResolver) FindTriggers(container *dom.Node) []*dom.Node {
	return dom.Query(container, r.cfg.TriggerMarker)
}

// FindContents returns every content-marked descendant of container in
// document order. Only the first match drives visual transitions.
func (r *StructureResolver) FindContents(container *dom.Node) []*dom.Node {
	return dom.Query(container, r.cfg.ContentMarker)
}

// OwningContainer returns the nearest container-marked ancestor of n,
// inclusive of n itself, or nil when n is not inside an accordion.
func (r *StructureResolver) OwningContainer(n *dom.Node) *dom.Node {
	return dom.Closest(n, r.cfg.ContainerMarker)
}
