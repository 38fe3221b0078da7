package router

import "strings"

// Param is one extracted path parameter.
type Param struct {
	Name  string
	Value string
}

// PartialMatch is the result of a segment matcher consuming a path prefix.
type PartialMatch struct {
	// Matched is the consumed span. It is always a prefix of the tested
	// path.
	Matched string

	// Remaining is the suffix left untested.
	Remaining string

	// Params are the parameters extracted from the consumed span, in the
	// order the matcher encountered them.
	Params []Param
}

// SegmentMatcher tests whether a path's leading portion satisfies a route
// segment pattern.
type SegmentMatcher interface {
	// Test applies the pattern to the leading portion of path. On success
	// it reports the consumed span, the remaining suffix, and any
	// extracted parameters. On failure the second result is false and the
	// PartialMatch is zero.
	Test(path string) (PartialMatch, bool)

	// PathSegments appends this matcher's segment descriptors to sink.
	// Route generation uses the descriptors to describe concrete routes.
	PathSegments(sink *[]PathSegment)
}

// SegmentKind classifies a path segment descriptor.
type SegmentKind int

const (
	// SegmentStatic is a literal segment, e.g. "users".
	SegmentStatic SegmentKind = iota

	// SegmentParam is a named single-segment parameter, e.g. ":id".
	SegmentParam

	// SegmentSplat is a named catch-all consuming the rest of the path,
	// e.g. "*rest".
	SegmentSplat
)

// PathSegment describes one segment of a concrete route.
type PathSegment struct {
	Kind  SegmentKind
	Value string
}

// String renders the segment in route-pattern notation.
func (s PathSegment) String() string {
	switch s.Kind {
	case SegmentParam:
		return ":" + s.Value
	case SegmentSplat:
		return "*" + s.Value
	default:
		return s.Value
	}
}

// PathSegmentsString renders a descriptor list as a route pattern,
// e.g. "/users/:id".
func PathSegmentsString(segments []PathSegment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Kind == SegmentStatic && seg.Value == "" {
			continue
		}
		b.WriteByte('/')
		b.WriteString(seg.String())
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// takeSegment consumes at most one leading slash plus one path segment.
// It returns the segment text, the unconsumed suffix, and the number of
// bytes consumed.
func takeSegment(path string) (seg, rest string, n int) {
	rest = path
	if strings.HasPrefix(rest, "/") {
		rest = rest[1:]
		n = 1
	}
	i := strings.IndexByte(rest, '/')
	if i < 0 {
		i = len(rest)
	}
	return rest[:i], rest[i:], n + i
}

// StaticSegment matches a literal path, e.g. "users" or "users/all".
// Leading and trailing slashes in the literal are ignored. The empty
// literal matches zero bytes and is how a root route is written.
type StaticSegment string

// Test implements SegmentMatcher.
func (s StaticSegment) Test(path string) (PartialMatch, bool) {
	lit := strings.Trim(string(s), "/")
	if lit == "" {
		return PartialMatch{Remaining: path}, true
	}
	rest := path
	n := 0
	for _, want := range strings.Split(lit, "/") {
		seg, after, consumed := takeSegment(rest)
		if seg != want {
			return PartialMatch{}, false
		}
		rest = after
		n += consumed
	}
	return PartialMatch{Matched: path[:n], Remaining: path[n:]}, true
}

// PathSegments implements SegmentMatcher.
func (s StaticSegment) PathSegments(sink *[]PathSegment) {
	lit := strings.Trim(string(s), "/")
	if lit == "" {
		*sink = append(*sink, PathSegment{Kind: SegmentStatic})
		return
	}
	for _, seg := range strings.Split(lit, "/") {
		*sink = append(*sink, PathSegment{Kind: SegmentStatic, Value: seg})
	}
}

// ParamSegment matches exactly one non-empty path segment and captures it
// under the given name.
type ParamSegment string

// Test implements SegmentMatcher.
func (p ParamSegment) Test(path string) (PartialMatch, bool) {
	seg, _, n := takeSegment(path)
	if seg == "" {
		return PartialMatch{}, false
	}
	return PartialMatch{
		Matched:   path[:n],
		Remaining: path[n:],
		Params:    []Param{{Name: string(p), Value: seg}},
	}, true
}

// PathSegments implements SegmentMatcher.
func (p ParamSegment) PathSegments(sink *[]PathSegment) {
	*sink = append(*sink, PathSegment{Kind: SegmentParam, Value: string(p)})
}

// WildcardSegment consumes the entire remaining path and captures it,
// without its leading slash, under the given name.
type WildcardSegment string

// Test implements SegmentMatcher.
func (w WildcardSegment) Test(path string) (PartialMatch, bool) {
	return PartialMatch{
		Matched: path,
		Params:  []Param{{Name: string(w), Value: strings.TrimPrefix(path, "/")}},
	}, true
}

// PathSegments implements SegmentMatcher.
func (w WildcardSegment) PathSegments(sink *[]PathSegment) {
	*sink = append(*sink, PathSegment{Kind: SegmentSplat, Value: string(w)})
}

// Segments composes matchers so they consume a path in sequence, e.g.
//
//	router.Segments(router.StaticSegment("users"), router.ParamSegment("id"))
//
// matches "/users/42" in one route node. Parameters accumulate in
// matcher order.
func Segments(matchers ...SegmentMatcher) SegmentMatcher {
	return segmentSeq(matchers)
}

type segmentSeq []SegmentMatcher

func (q segmentSeq) Test(path string) (PartialMatch, bool) {
	rest := path
	n := 0
	var params []Param
	for _, m := range q {
		pm, ok := m.Test(rest)
		if !ok {
			return PartialMatch{}, false
		}
		n += len(pm.Matched)
		rest = pm.Remaining
		params = append(params, pm.Params...)
	}
	return PartialMatch{Matched: path[:n], Remaining: rest, Params: params}, true
}

func (q segmentSeq) PathSegments(sink *[]PathSegment) {
	for _, m := range q {
		m.PathSegments(sink)
	}
}
