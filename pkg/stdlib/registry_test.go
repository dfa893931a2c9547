package stdlib

import (
	"sort"
	"testing"

	"github.com/lemonberrylabs/golox/pkg/types"
)

func callNative(t *testing.T, name string, args ...types.Value) (types.Value, error) {
	t.Helper()
	fn, ok := NewRegistry().Get(name)
	if !ok {
		t.Fatalf("native %q not registered", name)
	}
	if len(args) != fn.Arity() {
		t.Fatalf("test passes %d args, %s declares arity %d", len(args), name, fn.Arity())
	}
	return fn.Call(args)
}

func TestNamesAreSorted(t *testing.T) {
	names := NewRegistry().Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	for _, want := range []string{"clock", "len", "str"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
			}
		}
		if !found {
			t.Errorf("registry should contain %q, has %v", want, names)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, ok := NewRegistry().Get("nope"); ok {
		t.Error("unknown name should not resolve")
	}
}

func TestClock(t *testing.T) {
	before, err := callNative(t, "clock")
	if err != nil {
		t.Fatal(err)
	}
	after, err := callNative(t, "clock")
	if err != nil {
		t.Fatal(err)
	}
	if before.Type() != types.TypeNumber {
		t.Fatalf("clock returned %s, want number", before.Type())
	}
	if after.AsNumber() < before.AsNumber() {
		t.Errorf("clock went backwards: %v then %v", before, after)
	}
}

func TestStr(t *testing.T) {
	tests := []struct {
		arg  types.Value
		want string
	}{
		{types.NewNumber(42), "42"},
		{types.NewNumber(2.5), "2.5"},
		{types.NewBool(true), "true"},
		{types.Null, "nil"},
		{types.NewString("already"), "already"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := callNative(t, "str", tt.arg)
			if err != nil {
				t.Fatal(err)
			}
			if got.AsString() != tt.want {
				t.Errorf("got %q, want %q", got.AsString(), tt.want)
			}
		})
	}
}

func TestLen(t *testing.T) {
	got, err := callNative(t, "len", types.NewString("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if got.AsNumber() != 5 {
		t.Errorf("got %v, want 5", got.AsNumber())
	}
}

func TestLenRejectsNonString(t *testing.T) {
	_, err := callNative(t, "len", types.NewNumber(1))
	if err == nil {
		t.Fatal("expected an error")
	}
	re, ok := err.(*types.RuntimeError)
	if !ok {
		t.Fatalf("got %T, want *types.RuntimeError", err)
	}
	if !re.HasTag(types.TagTypeError) {
		t.Errorf("error should carry the TypeError tag, has %v", re.Tags)
	}
	// Natives have no source position; the interpreter fills it in at the
	// call site.
	if re.Line != 0 {
		t.Errorf("native error line = %d, want 0", re.Line)
	}
}

func TestNativeDisplayForm(t *testing.T) {
	fn, _ := NewRegistry().Get("clock")
	if got := fn.String(); got != "<native fn clock>" {
		t.Errorf("got %q", got)
	}
}

func TestRegisterCustomNative(t *testing.T) {
	r := NewRegistry()
	r.Register("double", 1, func(args []types.Value) (types.Value, error) {
		return types.NewNumber(args[0].AsNumber() * 2), nil
	})

	fn, ok := r.Get("double")
	if !ok {
		t.Fatal("double should be registered")
	}
	got, err := fn.Call([]types.Value{types.NewNumber(21)})
	if err != nil {
		t.Fatal(err)
	}
	if got.AsNumber() != 42 {
		t.Errorf("got %v, want 42", got.AsNumber())
	}
}
