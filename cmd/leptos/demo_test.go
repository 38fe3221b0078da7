package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/zeinix-zz/leptos/pkg/server"
)

func TestDemoRoutesEnumeration(t *testing.T) {
	var patterns []string
	for info := range demoRoutes().GenerateRoutes() {
		patterns = append(patterns, info.Pattern())
	}
	want := []string{"/", "/blog", "/blog/:slug", "/live", "/*path"}
	if !reflect.DeepEqual(patterns, want) {
		t.Errorf("patterns = %v, want %v", patterns, want)
	}
}

func TestDemoRoutesDispatch(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := server.NewHandler(demoRoutes(), server.WithLogger(logger))
	srv := httptest.NewServer(h)
	defer srv.Close()

	tests := []struct {
		path     string
		contains string
	}{
		{"/", "Welcome."},
		{"/blog", "All posts."},
		{"/blog/hello-world", "hello-world"},
		{"/anything/else", "Nothing at /anything/else."},
	}
	for _, tt := range tests {
		resp, err := http.Get(srv.URL + tt.path)
		if err != nil {
			t.Fatalf("GET %s: %v", tt.path, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", tt.path, resp.StatusCode)
			continue
		}
		if !strings.Contains(string(body), tt.contains) {
			t.Errorf("GET %s body = %q, want it to contain %q", tt.path, body, tt.contains)
		}
	}
}
