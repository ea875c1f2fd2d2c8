package optional_test

import (
	"testing"

	"github.com/noshiro-pf/immu/lib/optional"
)

func TestSomeNone(t *testing.T) {
	some := optional.Some(42)
	none := optional.None[int]()

	if !some.IsSome() || some.IsNone() {
		t.Error("expected Some to report a value")
	}
	if none.IsSome() || !none.IsNone() {
		t.Error("expected None to report no value")
	}

	if v, ok := some.Unwrap(); !ok || v != 42 {
		t.Errorf("expected (42, true), got (%d, %v)", v, ok)
	}
	if v, ok := none.Unwrap(); ok || v != 0 {
		t.Errorf("expected (0, false), got (%d, %v)", v, ok)
	}
}

// The zero value of Value is none.
func TestZeroValueIsNone(t *testing.T) {
	var v optional.Value[string]
	if v.IsSome() {
		t.Error("expected the zero value to be none")
	}
}

func TestOrElse(t *testing.T) {
	if got := optional.Some("x").OrElse("fallback"); got != "x" {
		t.Errorf("expected held value, got %q", got)
	}
	if got := optional.None[string]().OrElse("fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestMap(t *testing.T) {
	double := func(n int) int { return 2 * n }

	if v, ok := optional.Map(optional.Some(21), double).Unwrap(); !ok || v != 42 {
		t.Errorf("expected Some(42), got (%d, %v)", v, ok)
	}
	if optional.Map(optional.None[int](), double).IsSome() {
		t.Error("expected Map to propagate none")
	}
}
