package router

import "sort"

// Method is an HTTP verb a route responds to.
type Method string

// The verbs routes can declare.
const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

// MethodSet is a set of HTTP verbs.
type MethodSet map[Method]struct{}

// NewMethodSet builds a set from the given verbs. Duplicates collapse.
func NewMethodSet(methods ...Method) MethodSet {
	s := make(MethodSet, len(methods))
	for _, m := range methods {
		s[m] = struct{}{}
	}
	return s
}

// Contains reports whether m is in the set.
func (s MethodSet) Contains(m Method) bool {
	_, ok := s[m]
	return ok
}

// Clone returns an independent copy of the set.
func (s MethodSet) Clone() MethodSet {
	c := make(MethodSet, len(s))
	for m := range s {
		c[m] = struct{}{}
	}
	return c
}

// Union returns a new set holding every verb in s or other.
// Neither input is modified.
func (s MethodSet) Union(other MethodSet) MethodSet {
	u := s.Clone()
	for m := range other {
		u[m] = struct{}{}
	}
	return u
}

// List returns the verbs in lexical order, for stable output.
func (s MethodSet) List() []Method {
	out := make([]Method, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
