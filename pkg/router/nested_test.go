package router

import (
	"reflect"
	"sync"
	"testing"
)

// viewFor tags test routes so match results can be told apart.
func viewFor(name string) View { return name }

func TestMatchNestedLeaf(t *testing.T) {
	route := NewRoute(StaticSegment("users"), viewFor("users"))

	tests := []struct {
		path      string
		wantMatch bool
		matched   string
		remaining string
	}{
		{"/users", true, "/users", ""},
		{"/users/", true, "/users", "/"},
		{"/users/42", false, "", "/users/42"},
		{"/projects", false, "", "/projects"},
		{"", false, "", ""},
	}

	for _, tt := range tests {
		m, remaining := route.MatchNested(tt.path)
		if (m != nil) != tt.wantMatch {
			t.Errorf("MatchNested(%q) match = %v, want %v", tt.path, m != nil, tt.wantMatch)
			continue
		}
		if remaining != tt.remaining {
			t.Errorf("MatchNested(%q) remaining = %q, want %q", tt.path, remaining, tt.remaining)
		}
		if m == nil {
			continue
		}
		if m.Matched() != tt.matched {
			t.Errorf("MatchNested(%q) matched = %q, want %q", tt.path, m.Matched(), tt.matched)
		}
		if m.Matched()+remaining != tt.path {
			t.Errorf("matched %q + remaining %q does not rebuild %q", m.Matched(), remaining, tt.path)
		}
	}
}

func TestMatchNestedWithChild(t *testing.T) {
	child := NewRoute(ParamSegment("id"), viewFor("user"))
	parent := NewRoute(StaticSegment("users"), viewFor("users")).Child(child)

	m, remaining := parent.MatchNested("/users/42")
	if m == nil {
		t.Fatal("expected match for /users/42")
	}
	if remaining != "" {
		t.Errorf("remaining = %q, want %q", remaining, "")
	}
	if m.Matched() != "/users" {
		t.Errorf("parent matched = %q, want %q", m.Matched(), "/users")
	}
	want := []Param{{Name: "id", Value: "42"}}
	if !reflect.DeepEqual(m.Params(), want) {
		t.Errorf("params = %v, want %v", m.Params(), want)
	}

	view, childMatch := m.ViewAndChild()
	if view != viewFor("users") {
		t.Errorf("view = %v, want parent view", view)
	}
	if childMatch == nil {
		t.Fatal("expected nested child match")
	}
	if childMatch.Matched() != "/42" {
		t.Errorf("child matched = %q, want %q", childMatch.Matched(), "/42")
	}
	childView, grandchild := childMatch.ViewAndChild()
	if childView != viewFor("user") {
		t.Errorf("child view = %v, want child view", childView)
	}
	if grandchild != nil {
		t.Error("leaf child should have no nested match")
	}
}

// A route with a declared child cannot terminate matching on its own:
// when the child fails, the whole route fails and the original input is
// returned, not the matcher's partial remainder.
func TestMatchNestedChildFailurePropagates(t *testing.T) {
	parent := NewRoute(StaticSegment("users"), viewFor("users")).
		Child(NewRoute(ParamSegment("id"), viewFor("user")))

	tests := []string{"/users", "/users/", "/users/42/extra"}
	for _, path := range tests {
		m, remaining := parent.MatchNested(path)
		if m != nil {
			t.Errorf("MatchNested(%q) matched, want failure", path)
		}
		if remaining != path {
			t.Errorf("MatchNested(%q) remaining = %q, want original path", path, remaining)
		}
	}
}

func TestMatchNestedResidualSuffixRejected(t *testing.T) {
	route := NewRoute(StaticSegment("users"), viewFor("users")).
		Child(NewRoute(ParamSegment("id"), viewFor("user")))

	// The concatenation of all levels must consume the entire path,
	// modulo one trailing slash.
	if m, _ := route.MatchNested("/users/42/settings"); m != nil {
		t.Error("residual suffix /settings should fail the match")
	}
	if m, remaining := route.MatchNested("/users/42/"); m == nil || remaining != "/" {
		t.Errorf("trailing slash should be tolerated, got match=%v remaining=%q", m != nil, remaining)
	}
}

func TestMatchNestedParamOrder(t *testing.T) {
	tree := NewRoute(Segments(StaticSegment("orgs"), ParamSegment("org")), viewFor("org")).
		Child(NewRoute(Segments(StaticSegment("repos"), ParamSegment("repo")), viewFor("repo")))

	m, _ := tree.MatchNested("/orgs/acme/repos/widget")
	if m == nil {
		t.Fatal("expected match")
	}
	want := []Param{
		{Name: "org", Value: "acme"},
		{Name: "repo", Value: "widget"},
	}
	if !reflect.DeepEqual(m.Params(), want) {
		t.Errorf("params = %v, want parent params before child params %v", m.Params(), want)
	}
}

// The returned ID is always the shallowest node responsible for the full
// match, even though the result nests descendant matches.
func TestMatchNestedShallowestID(t *testing.T) {
	child := NewRoute(ParamSegment("id"), viewFor("user"))
	parent := NewRoute(StaticSegment("users"), viewFor("users")).Child(child)

	m, _ := parent.MatchNested("/users/42")
	if m == nil {
		t.Fatal("expected match")
	}
	if m.RouteID() != parent.ID() {
		t.Errorf("RouteID = %d, want parent ID %d", m.RouteID(), parent.ID())
	}
	_, cm := m.ViewAndChild()
	if cm.RouteID() != child.ID() {
		t.Errorf("child RouteID = %d, want child ID %d", cm.RouteID(), child.ID())
	}
}

func TestMatchNestedThreeLevels(t *testing.T) {
	tree := NewRoute(StaticSegment(""), viewFor("root")).
		Child(NewRoute(StaticSegment("users"), viewFor("users")).
			Child(NewRoute(ParamSegment("id"), viewFor("user"))))

	m, remaining := tree.MatchNested("/users/42")
	if m == nil || remaining != "" {
		t.Fatalf("MatchNested = (%v, %q), want full match", m, remaining)
	}
	var matched []string
	for cur := m; cur != nil; _, cur = cur.ViewAndChild() {
		matched = append(matched, cur.Matched())
	}
	want := []string{"", "/users", "/42"}
	if !reflect.DeepEqual(matched, want) {
		t.Errorf("matched spans = %v, want %v", matched, want)
	}
}

func TestChildAttachmentAtMostOnce(t *testing.T) {
	route := NewRoute(StaticSegment("users"), viewFor("users")).
		Child(NewRoute(ParamSegment("id"), viewFor("user")))

	defer func() {
		if recover() == nil {
			t.Error("second Child attachment should panic")
		}
	}()
	route.Child(NewRoute(ParamSegment("other"), viewFor("other")))
}

func TestBuilderDefaultsAndOverrides(t *testing.T) {
	route := NewRoute(StaticSegment("users"), viewFor("users"))
	if !reflect.DeepEqual(route.methods, NewMethodSet(MethodGet)) {
		t.Errorf("default methods = %v, want {GET}", route.methods)
	}
	if route.ssrMode != DefaultSsrMode() {
		t.Errorf("default ssr mode = %v, want %v", route.ssrMode, DefaultSsrMode())
	}

	// Last write wins for the mode.
	route.SsrMode(SsrMode{Kind: SsrAsync}).SsrMode(StaticMode(nil))
	if route.ssrMode.Kind != SsrStatic {
		t.Errorf("ssr mode after overrides = %v, want static", route.ssrMode)
	}

	route.Methods(MethodGet, MethodPost).Data("payload")
	if !route.methods.Contains(MethodPost) {
		t.Error("Methods override not applied")
	}
	if route.RouteData() != "payload" {
		t.Errorf("RouteData = %v, want %q", route.RouteData(), "payload")
	}
}

func TestRouteIDUniqueness(t *testing.T) {
	const workers = 8
	const perWorker = 50

	var mu sync.Mutex
	seen := make(map[RouteID]int)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				r := NewRoute(StaticSegment("x"), nil)
				mu.Lock()
				seen[r.ID()]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Errorf("got %d distinct IDs, want %d", len(seen), workers*perWorker)
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("ID %d issued %d times", id, count)
		}
	}
}
