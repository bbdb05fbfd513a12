package cli

import (
	"fmt"
	"strings"

	"github.com/monkeswag33/vgacon"
)

// ANSI SGR codes for the 16 text-mode colors. The bright half of the
// palette ends up on the aixterm bright codes so DarkGray..White keep
// their intensity on terminals without bold-as-bright.
var (
	ansiFg = [16]int{30, 34, 32, 36, 31, 35, 33, 37, 90, 94, 92, 96, 91, 95, 93, 97}
	ansiBg = [16]int{40, 44, 42, 46, 41, 45, 43, 47, 100, 104, 102, 106, 101, 105, 103, 107}
)

// Renderer turns console frames into an ANSI escape stream, emitting
// only the cells that changed since the previous frame.
type Renderer struct {
	cols int
	rows int

	offsetX int
	offsetY int

	frame []vgacon.Cell
	last  []vgacon.Cell
}

func newRenderer(cols, rows, offsetX, offsetY int) *Renderer {
	return &Renderer{
		cols:    cols,
		rows:    rows,
		offsetX: offsetX,
		offsetY: offsetY,
	}
}

// Invalidate forgets the previous frame so the next paint redraws
// every cell.
func (r *Renderer) Invalidate() {
	r.last = nil
}

// displayRune maps a cell's character code to the rune drawn for it.
func displayRune(ch byte) rune {
	switch {
	case ch == vgacon.Erased:
		return ' '
	case ch == vgacon.Placeholder:
		return '■'
	case ch < 0x20 || ch > 0x7e:
		return '■'
	default:
		return rune(ch)
	}
}

// paint renders one frame of c and returns the escape stream that
// updates the host terminal.
func (r *Renderer) paint(c *vgacon.Console) string {
	r.frame = c.Snapshot(r.frame)

	var sb strings.Builder
	var lastAttr vgacon.Attr
	sgrSet := false // host SGR state is unknown until the first emit
	cursorAt := -1  // host cursor position as a cell index, -1 unknown

	for y := 0; y < r.rows; y++ {
		for x := 0; x < r.cols; x++ {
			i := y*r.cols + x
			cell := r.frame[i]
			if r.last != nil && r.last[i] == cell {
				continue
			}
			if cursorAt != i {
				fmt.Fprintf(&sb, "\x1b[%d;%dH", y+r.offsetY+1, x+r.offsetX+1)
			}
			if !sgrSet || cell.Attr != lastAttr {
				fmt.Fprintf(&sb, "\x1b[%d;%dm", ansiFg[cell.Attr.Foreground()], ansiBg[cell.Attr.Background()])
				lastAttr = cell.Attr
				sgrSet = true
			}
			sb.WriteRune(displayRune(cell.Char))
			cursorAt = i + 1
		}
		cursorAt = -1 // row ends invalidate the run
	}

	// Park the host cursor on the console cursor so terminal cursor
	// rendering tracks it. A column resting at cols clamps to the last
	// visible cell.
	cx, cy := c.Cursor()
	if cx >= r.cols {
		cx = r.cols - 1
	}
	fmt.Fprintf(&sb, "\x1b[%d;%dH", cy+r.offsetY+1, cx+r.offsetX+1)

	if r.last == nil {
		r.last = make([]vgacon.Cell, len(r.frame))
	}
	copy(r.last, r.frame)
	return sb.String()
}
