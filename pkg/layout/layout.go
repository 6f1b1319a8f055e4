// Package layout arranges windows on the screen.
//
// Windows are kept in an ordered list, one of which is active. Their
// rectangles are computed from a binary split tree: every split halves the
// space of one window, and closing a window gives its space back to its
// sibling.
package layout

import (
	"errors"

	"src.ked.sh/pkg/buffer"
	"src.ked.sh/pkg/logutil"
	"src.ked.sh/pkg/window"
)

var logger = logutil.GetLogger("[layout] ")

// Errors returned by Layout methods.
var (
	ErrNoRoom     = errors.New("not enough room")
	ErrLastWindow = errors.New("cannot close last window")
)

// Layout is an ordered collection of windows with exactly one active window.
type Layout struct {
	windows []*window.Window
	active  int

	root   *node
	leaves map[*window.Window]*node

	height, width int
	sidebar       int
}

// A node of the split tree. Leaf nodes have a window; inner nodes have two
// children, side by side when vertical is true and stacked otherwise.
type node struct {
	parent   *node
	win      *window.Window
	vertical bool
	children [2]*node
}

// New creates a Layout with a single window showing buf. The windows share
// an area of height rows, status lines included, and width columns.
func New(buf *buffer.Buffer, height, width, sidebar int) *Layout {
	w := window.New(buf, window.Rect{}, sidebar)
	root := &node{win: w}
	l := &Layout{
		windows: []*window.Window{w},
		root:    root,
		leaves:  map[*window.Window]*node{w: root},
		height:  height, width: width, sidebar: sidebar,
	}
	l.relayout()
	return l
}

// Active returns the active window.
func (l *Layout) Active() *window.Window { return l.windows[l.active] }

// ActiveIndex returns the index of the active window in Windows.
func (l *Layout) ActiveIndex() int { return l.active }

// Windows returns all windows, in the order they were created relative to
// their neighbors: a new window is placed right after the window it was split
// from.
func (l *Layout) Windows() []*window.Window {
	return append([]*window.Window(nil), l.windows...)
}

// Size returns the area shared by the windows.
func (l *Layout) Size() (height, width int) { return l.height, l.width }

// SplitVertical splits the active window into two side by side. The new
// window shows buf, is placed to the right, gets the extra column when the
// width is odd, and becomes active.
func (l *Layout) SplitVertical(buf *buffer.Buffer) error {
	r := l.Active().Rect()
	if r.Width/2-l.sidebar < 1 {
		return ErrNoRoom
	}
	l.split(buf, true)
	return nil
}

// SplitHorizontal splits the active window into two stacked ones. The status
// line of the upper window separates them, so the text heights add up to one
// less than the original height; the new window is placed below, gets the
// extra row when needed, and becomes active.
func (l *Layout) SplitHorizontal(buf *buffer.Buffer) error {
	r := l.Active().Rect()
	if (r.Height-1)/2 < 1 {
		return ErrNoRoom
	}
	l.split(buf, false)
	return nil
}

func (l *Layout) split(buf *buffer.Buffer, vertical bool) {
	old := l.Active()
	n := l.leaves[old]
	w := window.New(buf, window.Rect{}, l.sidebar)
	first := &node{parent: n, win: old}
	second := &node{parent: n, win: w}
	n.win, n.vertical, n.children = nil, vertical, [2]*node{first, second}
	l.leaves[old], l.leaves[w] = first, second

	l.windows = append(l.windows, nil)
	copy(l.windows[l.active+2:], l.windows[l.active+1:])
	l.windows[l.active+1] = w
	l.active++
	l.relayout()
	logger.Printf("split window %d (vertical: %v), now %d windows",
		l.active-1, vertical, len(l.windows))
}

// Close removes the active window. Its sibling in the split tree takes over
// its space, and the first window of that sibling becomes active. The last
// window cannot be closed.
func (l *Layout) Close() error {
	if len(l.windows) == 1 {
		return ErrLastWindow
	}
	w := l.Active()
	n := l.leaves[w]
	parent := n.parent
	sibling := parent.children[0]
	if sibling == n {
		sibling = parent.children[1]
	}
	// The sibling takes the place of the parent.
	*parent = node{parent: parent.parent, win: sibling.win,
		vertical: sibling.vertical, children: sibling.children}
	for _, c := range parent.children {
		if c != nil {
			c.parent = parent
		}
	}
	if parent.win != nil {
		l.leaves[parent.win] = parent
	}
	delete(l.leaves, w)

	l.windows = append(l.windows[:l.active], l.windows[l.active+1:]...)
	next := firstLeaf(parent).win
	for i, win := range l.windows {
		if win == next {
			l.active = i
		}
	}
	l.relayout()
	return nil
}

func firstLeaf(n *node) *node {
	for n.win == nil {
		n = n.children[0]
	}
	return n
}

// Resize changes the area shared by the windows and recomputes all their
// rectangles.
func (l *Layout) Resize(height, width int) {
	l.height, l.width = height, width
	l.relayout()
}

func (l *Layout) relayout() {
	place(l.root, 0, 0, l.height, l.width)
}

// Places the windows in the subtree n in an area of rows (status lines
// included) and cols.
func place(n *node, top, left, rows, cols int) {
	if n.win != nil {
		n.win.SetRect(window.Rect{Top: top, Left: left, Height: max(rows-1, 0), Width: cols})
		return
	}
	if n.vertical {
		leftCols := cols / 2
		place(n.children[0], top, left, rows, leftCols)
		place(n.children[1], top, left+leftCols, rows, cols-leftCols)
		return
	}
	// Text height of the upper window is (rows-1-1)/2.
	topRows := max(rows-2, 0)/2 + 1
	place(n.children[0], top, left, topRows, cols)
	place(n.children[1], top+topRows, left, max(rows-topRows, 0), cols)
}
