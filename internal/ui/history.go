package ui

import (
	"strconv"

	"ecosim/internal/core"
)

// History keeps the most recent population samples for the overlay graph.
type History struct {
	limit int
	herb  []int
	carn  []int
}

// NewHistory keeps at most limit samples per series.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 1
	}
	return &History{limit: limit}
}

// Push appends a sample, dropping the oldest once the limit is reached.
func (h *History) Push(herbivores, carnivores int) {
	h.herb = appendBounded(h.herb, herbivores, h.limit)
	h.carn = appendBounded(h.carn, carnivores, h.limit)
}

// PushSnapshot records the herbivore and carnivore counts of a snapshot. It
// reports false when the snapshot carries no population figures.
func (h *History) PushSnapshot(s core.ParameterSnapshot) bool {
	herb, ok1 := snapshotInt(s, "herbivores")
	carn, ok2 := snapshotInt(s, "carnivores")
	if !ok1 || !ok2 {
		return false
	}
	h.Push(herb, carn)
	return true
}

// Len returns the number of samples held.
func (h *History) Len() int { return len(h.herb) }

// Reset drops all samples.
func (h *History) Reset() {
	h.herb = h.herb[:0]
	h.carn = h.carn[:0]
}

// Max returns the largest value across both series, at least 1.
func (h *History) Max() int {
	m := 1
	for i := range h.herb {
		m = max(m, h.herb[i], h.carn[i])
	}
	return m
}

// Series returns both series scaled into [0, height] pixels, oldest first.
func (h *History) Series(height int) (herb, carn []int) {
	top := h.Max()
	scale := func(vals []int) []int {
		out := make([]int, len(vals))
		for i, v := range vals {
			out[i] = v * height / top
		}
		return out
	}
	return scale(h.herb), scale(h.carn)
}

func appendBounded(vals []int, v, limit int) []int {
	if len(vals) >= limit {
		copy(vals, vals[1:])
		vals = vals[:len(vals)-1]
	}
	return append(vals, v)
}

func snapshotInt(s core.ParameterSnapshot, key string) (int, bool) {
	p, ok := s.Lookup(key)
	if !ok || p.Type != core.ParamTypeInt {
		return 0, false
	}
	v, err := strconv.Atoi(p.Value)
	if err != nil {
		return 0, false
	}
	return v, true
}
