package simple

import (
	"errors"
	"testing"
)

func TestEnvLookup(t *testing.T) {
	var env *Env

	_, err := env.Lookup("x")
	if !errors.Is(err, ErrUnboundVariable) {
		t.Fatalf("got %v", err)
	}

	env = env.Extend("x", Number(1))
	v, err := env.Lookup("x")
	if err != nil {
		t.Fatal(err)
	}
	if v != Value(Number(1)) {
		t.Fatalf("got %v", v)
	}
}

func TestEnvImmutability(t *testing.T) {
	base := (*Env)(nil).Extend("x", Number(1))

	extended := base.Extend("y", Number(2))
	if _, err := base.Lookup("y"); !errors.Is(err, ErrUnboundVariable) {
		t.Fatal("extension leaked into the old environment")
	}

	shadowed := base.Extend("x", Number(9))
	v, err := shadowed.Lookup("x")
	if err != nil {
		t.Fatal(err)
	}
	if v != Value(Number(9)) {
		t.Fatalf("got %v", v)
	}
	v, err = base.Lookup("x")
	if err != nil {
		t.Fatal(err)
	}
	if v != Value(Number(1)) {
		t.Fatalf("old binding changed: %v", v)
	}

	if _, err := extended.Lookup("x"); err != nil {
		t.Fatal(err)
	}
}

func TestEnvString(t *testing.T) {
	var env *Env
	if s := env.String(); s != "{}" {
		t.Fatalf("got %q", s)
	}

	env = env.Extend("y", Boolean(true)).Extend("x", Number(5))
	if s := env.String(); s != "{x: 5, y: true}" {
		t.Fatalf("got %q", s)
	}

	// shadowed bindings are elided
	env = env.Extend("x", Number(6))
	if s := env.String(); s != "{x: 6, y: true}" {
		t.Fatalf("got %q", s)
	}
}
