package router

import "sync/atomic"

// RouteID uniquely identifies a route node within the process.
// IDs are compared only by value; they carry no ordering semantics
// beyond being distinct.
type RouteID uint16

// routeID is the process-wide route ID counter. It is initialized once at
// process start and never reset. Only uniqueness is required, so a plain
// atomic add is enough; no call ever needs to observe another call's
// increment in order.
var routeID atomic.Uint32

// nextRouteID returns a fresh, never-before-issued route ID.
// Safe for concurrent use from any number of call sites.
func nextRouteID() RouteID {
	return RouteID(routeID.Add(1))
}
