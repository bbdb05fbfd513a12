package vgacon

import (
	"fmt"

	"github.com/monkeswag33/vgacon/intr"
	"github.com/monkeswag33/vgacon/mmio"
)

// Default geometry and mapping of a text-mode display.
const (
	DefaultCols = 80
	DefaultRows = 25

	// DefaultAddr is the physical address text-mode video memory is
	// mapped at.
	DefaultAddr uintptr = 0xb8000
)

// inputPrompt is the fixed diagnostic Input emits until real keyboard
// support exists.
const inputPrompt = "Hello World\n"

// Console renders an incoming byte stream onto a character-cell
// framebuffer, tracking the cursor and handling line wrap, scrolling
// and backspace-erase. The grid geometry and the color attribute are
// fixed at construction and never change.
//
// Every public method masks interrupt delivery on the console's
// controller and holds the spin lock for the full operation, so the
// console is safe to call from normal code and from interrupt handlers
// fired through the same controller.
type Console struct {
	mu SpinLock
	ic *intr.Controller

	cols int
	rows int

	cursorX int
	cursorY int

	attr Attr
	fb   *mmio.Device

	inputMode bool
}

// New creates a console over dev with the fixed attribute attr. Cols
// and rows default to 80x25 when non-positive. A nil dev gets a
// RAM-backed device of the right size; a nil ic gets a fresh interrupt
// controller. The device must hold at least cols*rows cells.
func New(cols, rows int, attr Attr, dev *mmio.Device, ic *intr.Controller) (*Console, error) {
	if cols <= 0 {
		cols = DefaultCols
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	if dev == nil {
		dev = mmio.NewRAM(cols * rows)
	}
	if dev.Len() < cols*rows {
		return nil, fmt.Errorf("vgacon: device holds %d cells, %dx%d grid needs %d", dev.Len(), cols, rows, cols*rows)
	}
	if ic == nil {
		ic = &intr.Controller{}
	}
	return &Console{
		ic:   ic,
		cols: cols,
		rows: rows,
		attr: attr,
		fb:   dev,
	}, nil
}

// NewMapped creates the default 80x25 console over the text-mode
// framebuffer at DefaultAddr. Only meaningful in an environment where
// that address is actually mapped.
func NewMapped(attr Attr, ic *intr.Controller) (*Console, error) {
	return New(DefaultCols, DefaultRows, attr, mmio.Map(DefaultAddr, DefaultCols*DefaultRows), ic)
}

// Size returns the grid dimensions in cells.
func (c *Console) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Attribute returns the fixed color attribute every cell is written with.
func (c *Console) Attribute() Attr {
	return c.attr
}

// Interrupts returns the controller interrupt sources must fire through
// so delivery respects the console's critical sections.
func (c *Console) Interrupts() *intr.Controller {
	return c.ic
}

// --- Writing ---

// WriteString renders s onto the grid. Every byte is accepted and maps
// to a defined action: printable ASCII and '\n' render directly,
// backspace erases, and anything else renders as the placeholder glyph.
// There is no error path.
func (c *Console) WriteString(s string) {
	c.ic.Without(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.inputMode = false
		c.writeStringInternal(s)
	})
}

// Write implements io.Writer so the fmt front-ends can drive the
// console. It never fails; unrepresentable bytes degrade to the
// placeholder glyph instead.
func (c *Console) Write(p []byte) (int, error) {
	c.WriteString(string(p))
	return len(p), nil
}

// Input is the input placeholder hook: it flags input mode and emits a
// fixed diagnostic line through the same sink.
//
// TODO: replace with real keyboard input once a scancode source exists.
func (c *Console) Input() {
	c.ic.Without(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.inputMode = true
		c.writeStringInternal(inputPrompt)
	})
}

// InputMode reports whether the last entry point used was Input rather
// than a write. Higher layers use this as a hint; the console itself
// does not.
func (c *Console) InputMode() bool {
	var mode bool
	c.ic.Without(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		mode = c.inputMode
	})
	return mode
}

// Clear blanks the whole grid and homes the cursor.
func (c *Console) Clear() {
	c.ic.Without(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for y := 0; y < c.rows; y++ {
			c.clearRowInternal(y)
		}
		c.cursorX, c.cursorY = 0, 0
	})
}

func (c *Console) writeStringInternal(s string) {
	for i := 0; i < len(s); i++ {
		switch b := s[i]; {
		case b == '\n' || (b >= 0x20 && b <= 0x7e):
			c.putInternal(b)
		case b == 0x08:
			c.backspaceInternal()
		default:
			c.putInternal(Placeholder)
		}
	}
}

// putInternal places one already-classified byte. The cursor column may
// rest at cols after a placement; the wrap happens on the next
// placement, not in the call that filled the last column.
func (c *Console) putInternal(b byte) {
	if b == '\n' {
		c.newLineInternal()
		return
	}
	if c.cursorX >= c.cols {
		c.newLineInternal()
	}
	c.fb.Store(c.cursorY*c.cols+c.cursorX, Cell{Char: b, Attr: c.attr}.pack())
	c.cursorX++
}

func (c *Console) backspaceInternal() {
	if c.cursorX == 0 && c.cursorY == 0 {
		return
	}
	if c.cursorX == 0 {
		c.cursorY--
		c.cursorX = c.lineEndInternal(c.cursorY)
		return
	}
	c.fb.Store(c.cursorY*c.cols+c.cursorX-1, Cell{Char: Erased, Attr: c.attr}.pack())
	c.cursorX--
}

// lineEndInternal returns the column one past row y's content: the
// first erased cell, or cols when the row holds visible characters all
// the way across. The scan never leaves the row.
func (c *Console) lineEndInternal(y int) int {
	x := 0
	for x < c.cols && byte(c.fb.Load(y*c.cols+x)) != Erased {
		x++
	}
	return x
}

func (c *Console) newLineInternal() {
	if c.cursorY == c.rows-1 {
		c.shiftUpInternal()
		c.clearRowInternal(c.rows - 1)
	} else {
		c.cursorY++
	}
	c.cursorX = 0
}

// shiftUpInternal scrolls the grid one row: row 0 is discarded and
// every other row moves up. Cells are copied through the device so the
// hardware sees each move.
func (c *Console) shiftUpInternal() {
	for y := 1; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			c.fb.Store((y-1)*c.cols+x, c.fb.Load(y*c.cols+x))
		}
	}
}

func (c *Console) clearRowInternal(y int) {
	blank := Cell{Char: Space, Attr: c.attr}.pack()
	for x := 0; x < c.cols; x++ {
		c.fb.Store(y*c.cols+x, blank)
	}
}

// --- Reading back ---

// Cell returns the cell at column x, row y. Out-of-range positions read
// as a blank cell.
func (c *Console) Cell(x, y int) Cell {
	var cell Cell
	c.ic.Without(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		cell = c.cellInternal(x, y)
	})
	return cell
}

func (c *Console) cellInternal(x, y int) Cell {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return Cell{Char: Space, Attr: c.attr}
	}
	return unpackCell(c.fb.Load(y*c.cols + x))
}

// Cursor returns the position the next placed character will go.
func (c *Console) Cursor() (x, y int) {
	c.ic.Without(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		x, y = c.cursorX, c.cursorY
	})
	return x, y
}

// Snapshot copies the whole grid into dst in row-major order and
// returns it, allocating when dst is too small. Frontends use it to
// read one coherent frame under a single lock acquisition.
func (c *Console) Snapshot(dst []Cell) []Cell {
	n := c.cols * c.rows
	if len(dst) < n {
		dst = make([]Cell, n)
	}
	c.ic.Without(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i := 0; i < n; i++ {
			dst[i] = unpackCell(c.fb.Load(i))
		}
	})
	return dst
}
