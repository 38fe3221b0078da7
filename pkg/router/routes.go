package router

import "iter"

// Routes is an ordered list of sibling route trees. It implements
// NestedRoutes itself, so it serves both as the top-level tree set and
// as a node's child subtree when a level has several alternatives.
type Routes []NestedRoutes

// MatchNested implements NestedRoutes. Siblings are tried in order and
// the first full match wins; later siblings are never consulted. When no
// sibling matches, path is returned unchanged.
func (rs Routes) MatchNested(path string) (*NestedMatch, string) {
	for _, r := range rs {
		if m, remaining := r.MatchNested(path); m != nil {
			return m, remaining
		}
	}
	return nil, path
}

// GenerateRoutes implements NestedRoutes, yielding every sibling's
// routes in declaration order.
func (rs Routes) GenerateRoutes() iter.Seq[GeneratedRouteInfo] {
	return func(yield func(GeneratedRouteInfo) bool) {
		for _, r := range rs {
			for info := range r.GenerateRoutes() {
				if !yield(info) {
					return
				}
			}
		}
	}
}
