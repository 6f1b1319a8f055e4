package layout

import "src.ked.sh/pkg/window"

// Direction is a direction for Navigate.
type Direction int

// Possible values for Direction.
const (
	Left Direction = iota
	Down
	Up
	Right
)

// Navigate makes the nearest window in the given direction active. A
// candidate must abut the active window: its near edge must equal the
// corresponding far edge of the active window, where the bottom edge of a
// window is below its status line. Among the candidates, the one whose origin
// is closest to that of the active window on the perpendicular axis wins, the
// earliest window winning ties. It reports whether the active window changed.
func (l *Layout) Navigate(d Direction) bool {
	a := l.Active().Rect()
	best, bestDist := -1, 0
	for i, w := range l.windows {
		if i == l.active {
			continue
		}
		c := w.Rect()
		var abuts bool
		var dist int
		switch d {
		case Left:
			abuts, dist = c.Right() == a.Left, abs(c.Top-a.Top)
		case Right:
			abuts, dist = c.Left == a.Right(), abs(c.Top-a.Top)
		case Up:
			abuts, dist = c.Bottom() == a.Top, abs(c.Left-a.Left)
		case Down:
			abuts, dist = c.Top == a.Bottom(), abs(c.Left-a.Left)
		}
		if abuts && (best == -1 || dist < bestDist) {
			best, bestDist = i, dist
		}
	}
	if best == -1 {
		return false
	}
	l.active = best
	// The buffer may have been edited through another window.
	l.Active().MoveRow(0)
	return true
}

// Focus makes the given window active. It reports whether the window is part
// of the layout.
func (l *Layout) Focus(w *window.Window) bool {
	for i, win := range l.windows {
		if win == w {
			l.active = i
			return true
		}
	}
	return false
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
