package ecology

import "image/color"

// rebuildDisplay projects every cell to its color triple.
func (w *World) rebuildDisplay() {
	cells := w.grid.Cells()
	for i := range w.display {
		if i < len(cells) {
			w.display[i] = cells[i].Color()
			continue
		}
		w.display[i] = color.RGBA{A: 255}
	}
}
