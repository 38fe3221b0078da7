package router

import (
	"reflect"
	"testing"
)

func TestMethodSetUnion(t *testing.T) {
	a := NewMethodSet(MethodGet)
	b := NewMethodSet(MethodGet, MethodPost)

	u := a.Union(b)
	if !reflect.DeepEqual(u, NewMethodSet(MethodGet, MethodPost)) {
		t.Errorf("union = %v, want {GET, POST}", u)
	}
	// Order-independent.
	if !reflect.DeepEqual(b.Union(a), u) {
		t.Error("union is not order-independent")
	}
	// Inputs untouched.
	if len(a) != 1 || len(b) != 2 {
		t.Error("union modified its inputs")
	}
}

func TestMethodSetList(t *testing.T) {
	s := NewMethodSet(MethodPut, MethodDelete, MethodGet)
	want := []Method{MethodDelete, MethodGet, MethodPut}
	if got := s.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List = %v, want lexical order %v", got, want)
	}
}

func TestMethodSetCloneIndependence(t *testing.T) {
	s := NewMethodSet(MethodGet)
	c := s.Clone()
	c[MethodPost] = struct{}{}
	if s.Contains(MethodPost) {
		t.Error("mutating a clone leaked into the original")
	}
}
