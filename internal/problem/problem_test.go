package problem

import (
	"errors"
	"testing"

	"exelixis/internal/model"
)

func TestResolveBuiltins(t *testing.T) {
	for _, name := range []string{"onemax", "nqueens", "sphere"} {
		p, err := Resolve(name, 0)
		if err != nil {
			t.Fatalf("resolve %s: %v", name, err)
		}
		if p.Name() != name {
			t.Fatalf("resolved %s, got %s", name, p.Name())
		}
	}
}

func TestResolveUnknownProblem(t *testing.T) {
	if _, err := Resolve("no_such_problem", 0); !errors.Is(err, ErrProblemNotFound) {
		t.Fatalf("expected ErrProblemNotFound, got %v", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	if err := Register("onemax", func(int) Problem { return OneMax{} }); err == nil {
		t.Fatal("duplicate registration must fail")
	}
	if err := Register("", func(int) Problem { return OneMax{} }); err == nil {
		t.Fatal("empty name must fail")
	}
	if err := Register("nameless", nil); err == nil {
		t.Fatal("nil factory must fail")
	}
}

func TestNamesContainsBuiltinsSorted(t *testing.T) {
	names := Names()
	seen := map[string]bool{}
	for i, name := range names {
		seen[name] = true
		if i > 0 && names[i-1] > name {
			t.Fatalf("names not sorted: %v", names)
		}
	}
	for _, want := range []string{"nqueens", "onemax", "sphere"} {
		if !seen[want] {
			t.Fatalf("builtin %s missing from %v", want, names)
		}
	}
}

func TestResolveAppliesSize(t *testing.T) {
	p, err := Resolve("onemax", 16)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	om, ok := p.(OneMax)
	if !ok {
		t.Fatalf("resolved %T, want OneMax", p)
	}
	if om.Length != 16 {
		t.Fatalf("length %d, want 16", om.Length)
	}
	if om.Representation() != model.Binary {
		t.Fatal("onemax must declare binary genes")
	}
}
