package core

import (
	"image/color"
	"strings"
	"testing"
)

type stubSim struct{}

func (stubSim) Name() string         { return "stub" }
func (stubSim) Size() Size           { return Size{W: 1, H: 1} }
func (stubSim) Reset(int64)          {}
func (stubSim) Step()                {}
func (stubSim) Colors() []color.RGBA { return make([]color.RGBA, 1) }

func TestRegistryLookup(t *testing.T) {
	Register("stub-test", func(map[string]string) Sim { return stubSim{} })
	Register("", func(map[string]string) Sim { return stubSim{} })
	Register("nil-test", nil)

	f, err := Lookup("stub-test")
	if err != nil {
		t.Fatalf("expected registered sim, got error %v", err)
	}
	if name := f(nil).Name(); name != "stub" {
		t.Fatalf("expected factory to build stub, got %q", name)
	}

	if _, err := Lookup("nil-test"); err == nil {
		t.Fatal("expected nil factories to be ignored")
	}
	_, err = Lookup("missing")
	if err == nil || !strings.Contains(err.Error(), "stub-test") {
		t.Fatalf("expected error listing available sims, got %v", err)
	}
}
