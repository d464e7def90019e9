package ecology

import "image/color"

// Kind enumerates what occupies a grid cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindHerbivore
	KindCarnivore
)

func (k Kind) String() string {
	switch k {
	case KindHerbivore:
		return "herbivore"
	case KindCarnivore:
		return "carnivore"
	default:
		return "empty"
	}
}

// Cell is the state of one grid position. The zero value is an empty cell.
// Vitality is both the life counter and the birth trigger.
type Cell struct {
	Kind     Kind
	Vitality uint8
}

// Empty returns the empty cell.
func Empty() Cell { return Cell{} }

// Herbivore returns a herbivore with the given vitality.
func Herbivore(v uint8) Cell { return newCell(KindHerbivore, v) }

// Carnivore returns a carnivore with the given vitality.
func Carnivore(v uint8) Cell { return newCell(KindCarnivore, v) }

// newCell keeps kind and vitality consistent: no vitality means no life.
func newCell(k Kind, v uint8) Cell {
	if v == 0 || k == KindEmpty {
		return Cell{}
	}
	return Cell{Kind: k, Vitality: v}
}

// withVitality returns c carrying v, clamped into [0, 255]. A live cell that
// reaches zero becomes empty.
func (c Cell) withVitality(v int) Cell {
	return newCell(c.Kind, clampVitality(v))
}

func clampVitality(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Color projects the cell to a display triple: vitality on the red channel
// for carnivores and on the green channel for herbivores.
func (c Cell) Color() color.RGBA {
	switch c.Kind {
	case KindCarnivore:
		return color.RGBA{R: c.Vitality, A: 255}
	case KindHerbivore:
		return color.RGBA{G: c.Vitality, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}

// Classify maps a stored color triple to a cell kind. Red wins over green.
func Classify(c color.RGBA) Kind {
	switch {
	case c.R > 0:
		return KindCarnivore
	case c.G > 0:
		return KindHerbivore
	default:
		return KindEmpty
	}
}

// CellFromColor decodes a display triple back into a cell.
func CellFromColor(c color.RGBA) Cell {
	switch Classify(c) {
	case KindCarnivore:
		return Carnivore(c.R)
	case KindHerbivore:
		return Herbivore(c.G)
	default:
		return Empty()
	}
}
