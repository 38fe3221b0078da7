package router

import (
	"strings"
	"time"
)

// SsrModeKind ranks a route's rendering strategy. Later kinds compare
// greater; the generation merge relies only on the strict ordering.
type SsrModeKind int

const (
	// SsrOutOfOrder streams HTML immediately and patches async views in
	// as they resolve. The default.
	SsrOutOfOrder SsrModeKind = iota

	// SsrPartiallyBlocked is out-of-order streaming with blocking
	// fragments replaced on the server for non-JS clients.
	SsrPartiallyBlocked

	// SsrInOrder streams HTML in document order, waiting on each async
	// view as it is reached.
	SsrInOrder

	// SsrAsync waits for every async view, then sends the whole page.
	SsrAsync

	// SsrStatic renders the route to static HTML ahead of time,
	// optionally regenerated per a RegenerationDescriptor.
	SsrStatic
)

// String returns a human-readable name for the kind.
func (k SsrModeKind) String() string {
	switch k {
	case SsrOutOfOrder:
		return "out-of-order"
	case SsrPartiallyBlocked:
		return "partially-blocked"
	case SsrInOrder:
		return "in-order"
	case SsrAsync:
		return "async"
	case SsrStatic:
		return "static"
	default:
		return "unknown"
	}
}

// RegenerationDescriptor is an opaque hint describing when a statically
// rendered route should be recomputed. A zero Interval means the route is
// only regenerated when one of its Tags is invalidated.
type RegenerationDescriptor struct {
	// Interval re-renders the route on a fixed schedule when non-zero.
	Interval time.Duration

	// Tags lists invalidation tags whose expiry triggers a re-render.
	Tags []string
}

// String summarizes the descriptor for route listings.
func (d RegenerationDescriptor) String() string {
	var parts []string
	if d.Interval > 0 {
		parts = append(parts, "every "+d.Interval.String())
	}
	if len(d.Tags) > 0 {
		parts = append(parts, "tags "+strings.Join(d.Tags, ","))
	}
	if len(parts) == 0 {
		return "manual"
	}
	return strings.Join(parts, "; ")
}

// SsrMode is a route's rendering strategy. Only the static kind carries a
// regeneration hint.
type SsrMode struct {
	Kind SsrModeKind

	// Regenerate is the regeneration hint for SsrStatic routes.
	// Nil for every other kind, and for static routes regenerated
	// manually.
	Regenerate *RegenerationDescriptor
}

// DefaultSsrMode returns the mode routes carry unless overridden.
func DefaultSsrMode() SsrMode {
	return SsrMode{Kind: SsrOutOfOrder}
}

// StaticMode returns a static rendering mode with an optional
// regeneration hint.
func StaticMode(regenerate *RegenerationDescriptor) SsrMode {
	return SsrMode{Kind: SsrStatic, Regenerate: regenerate}
}

// GreaterThan reports whether m ranks strictly above other. Kinds order
// first; between two static modes, one carrying a regeneration hint
// ranks above one without. Every other same-kind comparison is a tie.
func (m SsrMode) GreaterThan(other SsrMode) bool {
	if m.Kind != other.Kind {
		return m.Kind > other.Kind
	}
	return m.Kind == SsrStatic && m.Regenerate != nil && other.Regenerate == nil
}

// String returns the kind name.
func (m SsrMode) String() string {
	return m.Kind.String()
}

// regenerationList derives the regeneration entries this mode contributes
// to a generated route: exactly one for a static mode carrying a hint,
// none otherwise.
func (m SsrMode) regenerationList() []RegenerationDescriptor {
	if m.Kind == SsrStatic && m.Regenerate != nil {
		return []RegenerationDescriptor{*m.Regenerate}
	}
	return nil
}
