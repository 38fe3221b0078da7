// Package router implements nested-route matching and enumeration for
// client/server view routing.
//
// A route tree is assembled once at application setup from Route nodes.
// Each node owns a segment matcher, a view selector, an allowed HTTP
// method set, a server-rendering mode, and at most one child subtree.
// Matching walks the tree top-down, consuming path segments and
// extracting typed parameters; the deepest chain of views needed to
// render the path comes back as a NestedMatch. Enumeration expands the
// tree into a flat, lazy sequence of concrete routes for static-site and
// link generation, merging per-node metadata along each root-to-leaf
// path.
//
// # Assembling a tree
//
//	routes := router.Routes{
//	    router.NewRoute(router.StaticSegment("users"), usersView).
//	        Child(router.Routes{
//	            router.NewRoute(router.StaticSegment(""), userListView),
//	            router.NewRoute(router.ParamSegment("id"), userView),
//	        }),
//	    router.NewRoute(router.StaticSegment("about"), aboutView),
//	}
//
// # Matching
//
//	m, remaining := routes.MatchNested("/users/42")
//	if m != nil {
//	    view, child := m.ViewAndChild()
//	    // render view, recurse into child for the nested outlet
//	}
//
// Matching never fails with an error: an unmatched path comes back as a
// nil match with the input path unconsumed, so a caller can try sibling
// trees with the original input untouched.
//
// # Enumeration
//
//	for info := range routes.GenerateRoutes() {
//	    // info.Segments, info.Methods, info.SsrMode, info.Regenerate
//	}
//
// Trees are immutable once handed to the router, so matching and
// enumeration are safe for concurrent use without locking.
package router
