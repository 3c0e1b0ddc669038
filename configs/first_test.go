package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	budget := First[int](loader, "step_budget")
	if budget != 100 {
		t.Fatalf("got %v", budget)
	}

	// missing paths yield the zero value
	if First[int](loader, "missing") != 0 {
		t.Fatal()
	}

}
