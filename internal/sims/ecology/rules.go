package ecology

import "github.com/pkg/errors"

// Fixed policy constants of the update rule.
const (
	InitialLife    = 50
	LifeAddition   = 10
	BirthReq       = 150
	BirthCost      = 2 * InitialLife
	OverPopulation = 220
)

// Comparator decides whether a vitality crosses a threshold.
type Comparator func(vitality, threshold int) bool

// AtLeast is satisfied at or above the threshold.
func AtLeast(vitality, threshold int) bool { return vitality >= threshold }

// Above is satisfied strictly above the threshold.
func Above(vitality, threshold int) bool { return vitality > threshold }

// offset is a neighbor displacement.
type offset struct{ dx, dy int }

// neighborOrder is the tie-break for both birth and feeding scans.
var neighborOrder = [...]offset{
	{dx: -1, dy: 0}, // left
	{dx: 0, dy: -1}, // up
	{dx: 1, dy: 0},  // right
	{dx: 0, dy: 1},  // down
}

const downNeighbor = 3

// Rules bundles the per-kind policy of the stepper. Thresholds are fixed;
// only the overcrowding comparators differ by kind.
type Rules struct {
	InitialLife    int
	LifeAddition   int
	BirthReq       int
	BirthCost      int
	OverPopulation int

	CarnivoreCrowded Comparator
	HerbivoreCrowded Comparator
}

// DefaultRules returns the standard policy: carnivores die of overcrowding
// at OverPopulation, herbivores only above it.
func DefaultRules() Rules {
	return Rules{
		InitialLife:      InitialLife,
		LifeAddition:     LifeAddition,
		BirthReq:         BirthReq,
		BirthCost:        BirthCost,
		OverPopulation:   OverPopulation,
		CarnivoreCrowded: AtLeast,
		HerbivoreCrowded: Above,
	}
}

func (r Rules) crowded(k Kind, vitality int) bool {
	cmp := r.HerbivoreCrowded
	if k == KindCarnivore {
		cmp = r.CarnivoreCrowded
	}
	return cmp(vitality, r.OverPopulation)
}

// Mode selects how a generation reads and writes the grid.
type Mode uint8

const (
	// ModeInPlace mutates the single grid while scanning it row-major, so
	// later cells observe writes made earlier in the same generation.
	ModeInPlace Mode = iota
	// ModeBuffered reads a frozen copy of the generation and writes the next
	// one separately. Contested targets go to the first claimant in
	// row-major order.
	ModeBuffered
)

func (m Mode) String() string {
	if m == ModeBuffered {
		return "buffered"
	}
	return "inplace"
}

// ParseMode accepts the names produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "inplace", "in-place", "":
		return ModeInPlace, nil
	case "buffered", "sync":
		return ModeBuffered, nil
	}
	return ModeInPlace, errors.Errorf("unknown update mode %q", s)
}

// Compat toggles legacy behaviors. All are off by default.
type Compat struct {
	// FreeHerbivoreDownBirth skips the parent's birth cost when a herbivore
	// gives birth into its down neighbor, matching older runs where that arm
	// charged the carnivore channel and left herbivore vitality untouched.
	FreeHerbivoreDownBirth bool `json:"free_herbivore_down_birth"`
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
