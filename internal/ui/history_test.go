package ui

import (
	"slices"
	"testing"

	"ecosim/internal/core"
)

func TestHistoryDropsOldest(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.Push(i*10, i)
	}
	if h.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", h.Len())
	}
	herb, carn := h.Series(50)
	if !slices.Equal(herb, []int{30, 40, 50}) {
		t.Fatalf("expected herbivore series scaled to max, got %v", herb)
	}
	if !slices.Equal(carn, []int{3, 4, 5}) {
		t.Fatalf("expected carnivore series scaled to max, got %v", carn)
	}

	h.Reset()
	if h.Len() != 0 || h.Max() != 1 {
		t.Fatalf("expected empty history after reset, len=%d max=%d", h.Len(), h.Max())
	}
}

func TestHistoryPushSnapshot(t *testing.T) {
	h := NewHistory(4)
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Population",
		Params: []core.Parameter{
			{Key: "herbivores", Type: core.ParamTypeInt, Value: "12"},
			{Key: "carnivores", Type: core.ParamTypeInt, Value: "3"},
		},
	}}}
	if !h.PushSnapshot(snap) {
		t.Fatal("expected snapshot with population figures to be recorded")
	}
	if h.Max() != 12 {
		t.Fatalf("expected max 12, got %d", h.Max())
	}
	if h.PushSnapshot(core.ParameterSnapshot{}) {
		t.Fatal("expected empty snapshot to be ignored")
	}
}
