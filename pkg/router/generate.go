package router

import (
	"iter"
	"slices"
)

// GeneratedRouteInfo describes one concrete route produced by
// enumerating a tree: the full segment list from root to leaf and the
// metadata merged along that path. Entries are built fresh per
// enumeration and are independent of one another.
type GeneratedRouteInfo struct {
	// Segments is the ordered segment descriptor list, parent segments
	// before child segments.
	Segments []PathSegment

	// SsrMode is the merged rendering mode for the route (see
	// GenerateRoutes for the merge rule).
	SsrMode SsrMode

	// Methods is the union of the method sets declared along the path.
	Methods MethodSet

	// Regenerate lists the regeneration hints collected along the path,
	// parent entries first.
	Regenerate []RegenerationDescriptor
}

// Pattern renders the route's segments in pattern notation, e.g.
// "/users/:id".
func (g GeneratedRouteInfo) Pattern() string {
	return PathSegmentsString(g.Segments)
}

// GenerateRoutes implements NestedRoutes.
//
// A leaf yields exactly one entry. A node with a child yields one entry
// per child entry, combining metadata as the caller pulls each one:
// segments and regeneration lists concatenate parent-first, methods
// union, and the rendering mode merges parent-biased: the child's mode
// is taken only when it ranks strictly above this node's; on a tie or a
// lesser child mode the node's own stored mode is kept verbatim.
func (r *Route) GenerateRoutes() iter.Seq[GeneratedRouteInfo] {
	var segments []PathSegment
	r.segments.PathSegments(&segments)
	regenerate := r.ssrMode.regenerationList()

	return func(yield func(GeneratedRouteInfo) bool) {
		if r.child == nil {
			yield(GeneratedRouteInfo{
				Segments:   segments,
				SsrMode:    r.ssrMode,
				Methods:    r.methods.Clone(),
				Regenerate: regenerate,
			})
			return
		}
		for child := range r.child.GenerateRoutes() {
			combined := GeneratedRouteInfo{
				Segments:   append(slices.Clone(segments), child.Segments...),
				SsrMode:    r.ssrMode,
				Methods:    r.methods.Union(child.Methods),
				Regenerate: append(slices.Clone(regenerate), child.Regenerate...),
			}
			if child.SsrMode.GreaterThan(r.ssrMode) {
				combined.SsrMode = child.SsrMode
			}
			if !yield(combined) {
				return
			}
		}
	}
}
