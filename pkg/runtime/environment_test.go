package runtime

import (
	"reflect"
	"testing"
)

func TestLookupEmptyEnvironment(t *testing.T) {
	env := NewEnvironment()
	if _, ok := env.Lookup("x"); ok {
		t.Fatalf("expected lookup in empty environment to fail")
	}
	if env.Depth() != 0 {
		t.Fatalf("expected empty environment depth 0, got %d", env.Depth())
	}
}

func TestExtendThenLookup(t *testing.T) {
	env := NewEnvironment().Extend("x", NumberValue{Val: 7})
	val, ok := env.Lookup("x")
	if !ok {
		t.Fatalf("expected binding for x")
	}
	if num, ok := val.(NumberValue); !ok || num.Val != 7 {
		t.Fatalf("unexpected value %#v", val)
	}
	if _, ok := env.Lookup("y"); ok {
		t.Fatalf("expected lookup of unbound name to fail")
	}
}

func TestNearestBindingShadows(t *testing.T) {
	env := NewEnvironment().
		Extend("x", NumberValue{Val: 1}).
		Extend("x", NumberValue{Val: 2})

	val, ok := env.Lookup("x")
	if !ok {
		t.Fatalf("expected binding for x")
	}
	if num, ok := val.(NumberValue); !ok || num.Val != 2 {
		t.Fatalf("expected nearest binding to win, got %#v", val)
	}
	if env.Depth() != 2 {
		t.Fatalf("shadowed binding should remain in the chain, depth %d", env.Depth())
	}
}

func TestExtendLeavesOriginalUntouched(t *testing.T) {
	base := NewEnvironment().Extend("x", NumberValue{Val: 1})
	extended := base.Extend("x", NumberValue{Val: 2}).Extend("y", ErrorValue{})

	val, ok := base.Lookup("x")
	if !ok {
		t.Fatalf("expected x to remain bound in original environment")
	}
	if num, ok := val.(NumberValue); !ok || num.Val != 1 {
		t.Fatalf("original environment changed: %#v", val)
	}
	if _, ok := base.Lookup("y"); ok {
		t.Fatalf("binding leaked into original environment")
	}

	if _, ok := extended.Lookup("y"); !ok {
		t.Fatalf("expected y in extended environment")
	}
}

func TestSnapshotAppliesShadowing(t *testing.T) {
	env := NewEnvironment().
		Extend("x", NumberValue{Val: 1}).
		Extend("y", NumberValue{Val: 2}).
		Extend("x", NumberValue{Val: 3})

	got := env.Snapshot()
	want := map[string]Value{
		"x": NumberValue{Val: 3},
		"y": NumberValue{Val: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected snapshot %#v", got)
	}

	keys := env.Keys()
	if !reflect.DeepEqual(keys, []string{"x", "y"}) {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	env := NewEnvironment().Extend("x", NumberValue{Val: 1})
	if _, ok := env.Lookup("X"); ok {
		t.Fatalf("lookup must not normalize names")
	}
}

func TestValueStrings(t *testing.T) {
	if got := (NumberValue{Val: -12}).String(); got != "-12" {
		t.Fatalf("unexpected number rendering %q", got)
	}
	if got := (ErrorValue{}).String(); got != "error" {
		t.Fatalf("unexpected error rendering %q", got)
	}
	if KindNumber.String() != "number" || KindError.String() != "error" {
		t.Fatalf("unexpected kind names %q %q", KindNumber, KindError)
	}
}
