package runtime

import (
	"testing"

	"github.com/lemonberrylabs/golox/pkg/types"
)

func TestScopeDefineAndGet(t *testing.T) {
	scope := NewScope()
	scope.Define("x", types.NewNumber(1))

	got, ok := scope.Get("x")
	if !ok {
		t.Fatal("x should be defined")
	}
	if got.AsNumber() != 1 {
		t.Errorf("got %v, want 1", got)
	}

	if _, ok := scope.Get("missing"); ok {
		t.Error("missing should not resolve")
	}
}

func TestScopeRedefineIsAllowed(t *testing.T) {
	scope := NewScope()
	scope.Define("x", types.NewNumber(1))
	scope.Define("x", types.NewString("two"))

	got, _ := scope.Get("x")
	if got.Type() != types.TypeString {
		t.Errorf("redefinition should replace the binding, got %s", got.Type())
	}
}

func TestChildScopeReadsThroughToParent(t *testing.T) {
	parent := NewScope()
	parent.Define("x", types.NewNumber(1))
	child := parent.NewChildScope()

	got, ok := child.Get("x")
	if !ok || got.AsNumber() != 1 {
		t.Errorf("child should see parent's x, got %v (%v)", got, ok)
	}
}

func TestShadowingLeavesOuterBindingIntact(t *testing.T) {
	parent := NewScope()
	parent.Define("x", types.NewNumber(1))
	child := parent.NewChildScope()
	child.Define("x", types.NewNumber(2))

	inner, _ := child.Get("x")
	outer, _ := parent.Get("x")
	if inner.AsNumber() != 2 {
		t.Errorf("child x = %v, want 2", inner)
	}
	if outer.AsNumber() != 1 {
		t.Errorf("parent x = %v, want 1", outer)
	}
}

func TestAssignUpdatesNearestDeclaringScope(t *testing.T) {
	parent := NewScope()
	parent.Define("x", types.NewNumber(1))
	child := parent.NewChildScope()

	if !child.Assign("x", types.NewNumber(5)) {
		t.Fatal("assignment to a parent binding should succeed")
	}
	got, _ := parent.Get("x")
	if got.AsNumber() != 5 {
		t.Errorf("parent x = %v, want 5", got)
	}
	// The child scope itself gained no binding.
	if _, ok := child.vars["x"]; ok {
		t.Error("assignment must not create a binding in the child scope")
	}
}

func TestAssignToUndeclaredFails(t *testing.T) {
	scope := NewScope().NewChildScope()
	if scope.Assign("nope", types.Null) {
		t.Error("assignment to an undeclared name should report false")
	}
}
