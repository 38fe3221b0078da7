package router

import "iter"

// View is the view selector attached to a route. The engine never
// inspects or invokes it; it is handed back unevaluated in the match
// result for the rendering layer to dispatch.
type View any

// NestedRoutes is the contract shared by route nodes and sibling sets:
// a tree level that can consume a path prefix and enumerate its concrete
// routes.
type NestedRoutes interface {
	// MatchNested matches path against this tree level. On success it
	// returns the match and the suffix left over ("" or "/"); on failure
	// it returns nil with path unchanged, so callers can try sibling
	// alternatives against the original input.
	MatchNested(path string) (*NestedMatch, string)

	// GenerateRoutes enumerates the tree into a flat sequence of
	// concrete routes. The sequence is lazy and finite (one entry per
	// leaf); it is not restartable, call GenerateRoutes again to
	// re-enumerate.
	GenerateRoutes() iter.Seq[GeneratedRouteInfo]
}

// Route is one node in a nested route tree: a segment matcher, at most
// one child subtree, a view selector, and per-route metadata. Routes are
// assembled once during application setup and are read-only afterwards.
type Route struct {
	id       RouteID
	segments SegmentMatcher
	child    NestedRoutes
	data     any
	view     View
	methods  MethodSet
	ssrMode  SsrMode
}

// NewRoute constructs a leaf route: fresh ID, no child, method set {GET},
// default rendering mode.
func NewRoute(segments SegmentMatcher, view View) *Route {
	return &Route{
		id:       nextRouteID(),
		segments: segments,
		view:     view,
		methods:  NewMethodSet(MethodGet),
		ssrMode:  DefaultSsrMode(),
	}
}

// Child attaches the route's single child subtree and returns the route
// for chaining. A route carries at most one subtree: a second attachment
// panics, so the misuse surfaces while the tree is being assembled, never
// during matching.
func (r *Route) Child(child NestedRoutes) *Route {
	if r.child != nil {
		panic("router: route already has a child subtree")
	}
	r.child = child
	return r
}

// SsrMode overrides the route's rendering mode. May be called any number
// of times before the tree is handed to the router; last write wins.
func (r *Route) SsrMode(mode SsrMode) *Route {
	r.ssrMode = mode
	return r
}

// Methods replaces the route's allowed method set (default {GET}).
func (r *Route) Methods(methods ...Method) *Route {
	r.methods = NewMethodSet(methods...)
	return r
}

// Data attaches opaque per-route data.
func (r *Route) Data(data any) *Route {
	r.data = data
	return r
}

// ID returns the route's unique identifier.
func (r *Route) ID() RouteID {
	return r.id
}

// RouteData returns the opaque per-route data, or nil.
func (r *Route) RouteData() any {
	return r.data
}

// NestedMatch is the result of a successful match: the span this level
// consumed, the accumulated parameters, the view selector to invoke, and
// the nested child match, if any.
type NestedMatch struct {
	id      RouteID
	matched string
	params  []Param
	child   *NestedMatch
	view    View
}

// RouteID identifies the shallowest route node responsible for the match.
func (m *NestedMatch) RouteID() RouteID {
	return m.id
}

// Matched returns the span of the input path consumed by this level's own
// segments. It is always a prefix of the matched input.
func (m *NestedMatch) Matched() string {
	return m.matched
}

// Params returns the extracted parameters: this level's own first, then
// each descendant's, parent before child.
func (m *NestedMatch) Params() []Param {
	return m.params
}

// ViewAndChild decomposes the match for recursive view dispatch: the view
// selector for this level and the match for the nested level below it,
// or nil at the innermost level.
func (m *NestedMatch) ViewAndChild() (View, *NestedMatch) {
	return m.view, m.child
}

// MatchNested implements NestedRoutes.
//
// The route matches a path only when the path is consumed in full,
// possibly modulo one trailing slash, by this node and its descendants.
// A node with a child never terminates matching on its own: if the child
// fails, the whole node fails and the original path is returned
// untouched.
func (r *Route) MatchNested(path string) (*NestedMatch, string) {
	pm, ok := r.segments.Test(path)
	if !ok {
		return nil, path
	}
	remaining := pm.Remaining
	params := pm.Params

	var child *NestedMatch
	if r.child != nil {
		child, remaining = r.child.MatchNested(remaining)
		if child == nil {
			return nil, path
		}
	}

	if remaining != "" && remaining != "/" {
		return nil, path
	}

	if child != nil {
		params = append(params, child.Params()...)
	}
	return &NestedMatch{
		id:      r.id,
		matched: pm.Matched,
		params:  params,
		child:   child,
		view:    r.view,
	}, remaining
}
