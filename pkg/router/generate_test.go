package router

import (
	"reflect"
	"slices"
	"testing"
	"time"
)

func collectRoutes(n NestedRoutes) []GeneratedRouteInfo {
	var out []GeneratedRouteInfo
	for info := range n.GenerateRoutes() {
		out = append(out, info)
	}
	return out
}

func TestGenerateRoutesLeaf(t *testing.T) {
	route := NewRoute(StaticSegment("about"), viewFor("about"))

	infos := collectRoutes(route)
	if len(infos) != 1 {
		t.Fatalf("leaf yielded %d entries, want 1", len(infos))
	}
	info := infos[0]
	if got := info.Pattern(); got != "/about" {
		t.Errorf("pattern = %q, want %q", got, "/about")
	}
	if !reflect.DeepEqual(info.Methods, NewMethodSet(MethodGet)) {
		t.Errorf("methods = %v, want {GET}", info.Methods)
	}
	if info.SsrMode != DefaultSsrMode() {
		t.Errorf("ssr mode = %v, want default", info.SsrMode)
	}
	if len(info.Regenerate) != 0 {
		t.Errorf("regenerate = %v, want empty", info.Regenerate)
	}
}

func TestGenerateRoutesOneEntryPerLeaf(t *testing.T) {
	tree := NewRoute(StaticSegment("docs"), viewFor("docs")).
		Child(Routes{
			NewRoute(StaticSegment(""), viewFor("index")),
			NewRoute(StaticSegment("guide"), viewFor("guide")),
			NewRoute(Segments(StaticSegment("api"), ParamSegment("topic")), viewFor("topic")),
		})

	infos := collectRoutes(tree)
	if len(infos) != 3 {
		t.Fatalf("got %d entries, want one per leaf (3)", len(infos))
	}

	var patterns []string
	for _, info := range infos {
		patterns = append(patterns, info.Pattern())
	}
	want := []string{"/docs", "/docs/guide", "/docs/api/:topic"}
	if !reflect.DeepEqual(patterns, want) {
		t.Errorf("patterns = %v, want %v", patterns, want)
	}

	// Every entry starts with the root's own segments.
	for _, info := range infos {
		if info.Segments[0] != (PathSegment{Kind: SegmentStatic, Value: "docs"}) {
			t.Errorf("entry %q does not begin with root segments", info.Pattern())
		}
	}
}

func TestGenerateRoutesMethodUnion(t *testing.T) {
	tree := NewRoute(StaticSegment("api"), viewFor("api")).
		Child(NewRoute(StaticSegment("users"), viewFor("users")).
			Methods(MethodGet, MethodPost))

	infos := collectRoutes(tree)
	if len(infos) != 1 {
		t.Fatalf("got %d entries, want 1", len(infos))
	}
	if !reflect.DeepEqual(infos[0].Methods, NewMethodSet(MethodGet, MethodPost)) {
		t.Errorf("methods = %v, want union {GET, POST}", infos[0].Methods)
	}
}

// The SSR merge is parent-biased: the child's mode wins only when it
// ranks strictly above the parent's; the merged value is always one of
// the two inputs, never a synthesized combination.
func TestGenerateRoutesSsrMerge(t *testing.T) {
	regen := &RegenerationDescriptor{Interval: time.Hour}

	tests := []struct {
		name   string
		parent SsrMode
		child  SsrMode
		want   SsrMode
	}{
		{"child greater", SsrMode{Kind: SsrOutOfOrder}, SsrMode{Kind: SsrAsync}, SsrMode{Kind: SsrAsync}},
		{"child lesser", SsrMode{Kind: SsrAsync}, SsrMode{Kind: SsrInOrder}, SsrMode{Kind: SsrAsync}},
		{"tie keeps parent", SsrMode{Kind: SsrInOrder}, SsrMode{Kind: SsrInOrder}, SsrMode{Kind: SsrInOrder}},
		{"static hint outranks bare static", StaticMode(nil), StaticMode(regen), StaticMode(regen)},
		{"bare static child loses", StaticMode(regen), StaticMode(nil), StaticMode(regen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewRoute(StaticSegment("a"), viewFor("a")).SsrMode(tt.parent).
				Child(NewRoute(StaticSegment("b"), viewFor("b")).SsrMode(tt.child))

			infos := collectRoutes(tree)
			if len(infos) != 1 {
				t.Fatalf("got %d entries, want 1", len(infos))
			}
			if infos[0].SsrMode != tt.want {
				t.Errorf("merged mode = %+v, want %+v", infos[0].SsrMode, tt.want)
			}
		})
	}
}

func TestGenerateRoutesRegenerateConcatenation(t *testing.T) {
	parentRegen := &RegenerationDescriptor{Tags: []string{"posts"}}
	childRegen := &RegenerationDescriptor{Interval: 10 * time.Minute}

	tree := NewRoute(StaticSegment("blog"), viewFor("blog")).SsrMode(StaticMode(parentRegen)).
		Child(NewRoute(ParamSegment("slug"), viewFor("post")).SsrMode(StaticMode(childRegen)))

	infos := collectRoutes(tree)
	if len(infos) != 1 {
		t.Fatalf("got %d entries, want 1", len(infos))
	}
	info := infos[0]
	if len(info.Regenerate) != 2 {
		t.Fatalf("regenerate = %v, want parent hint then child hint", info.Regenerate)
	}
	if !slices.Equal(info.Regenerate[0].Tags, []string{"posts"}) {
		t.Errorf("first regenerate entry = %v, want parent's", info.Regenerate[0])
	}
	if info.Regenerate[1].Interval != 10*time.Minute {
		t.Errorf("second regenerate entry = %v, want child's", info.Regenerate[1])
	}
	// Both sides are static and the child carries a hint the parent also
	// has, so the tie keeps the parent's stored mode verbatim.
	if info.SsrMode != StaticMode(parentRegen) {
		t.Errorf("merged mode = %+v, want parent's verbatim", info.SsrMode)
	}
}

// Each pull materializes an independent entry: mutating one yielded
// entry must not leak into the next.
func TestGenerateRoutesEntriesIndependent(t *testing.T) {
	tree := NewRoute(StaticSegment("docs"), viewFor("docs")).
		Child(Routes{
			NewRoute(StaticSegment("a"), viewFor("a")),
			NewRoute(StaticSegment("b"), viewFor("b")),
		})

	var first GeneratedRouteInfo
	i := 0
	for info := range tree.GenerateRoutes() {
		if i == 0 {
			first = info
			info.Segments[0] = PathSegment{Kind: SegmentStatic, Value: "mutated"}
			info.Methods[MethodDelete] = struct{}{}
		} else {
			if info.Segments[0].Value != "docs" {
				t.Errorf("second entry saw mutated segments: %v", info.Segments)
			}
			if info.Methods.Contains(MethodDelete) {
				t.Error("second entry saw mutated method set")
			}
		}
		i++
	}
	_ = first

	// Early termination is safe: the sequence just stops.
	count := 0
	for range tree.GenerateRoutes() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("early break consumed %d entries, want 1", count)
	}
}
