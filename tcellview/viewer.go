// Package tcellview renders a vgacon console on a tcell screen.
//
// Where cli paints raw ANSI escapes, this frontend leans on tcell for
// terminal setup, color handling and input, which makes it the easiest
// way to put the console on screen portably.
package tcellview

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/monkeswag33/vgacon"
)

// Viewer drives a tcell screen from a console's cell grid.
type Viewer struct {
	console *vgacon.Console
	screen  tcell.Screen

	frame  []vgacon.Cell
	styles [256]tcell.Style
}

// New creates and initializes a viewer. Fini must be called before the
// process exits to restore the host terminal.
func New(console *vgacon.Console) (*Viewer, error) {
	if console == nil {
		return nil, fmt.Errorf("tcellview: console is required")
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellview: create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcellview: init screen: %w", err)
	}

	v := &Viewer{console: console, screen: screen}

	// Precompute one style per attribute byte from the text-mode
	// palette so the render loop stays allocation-free.
	for attr := 0; attr < 256; attr++ {
		fg := vgacon.PaletteRGB[vgacon.Attr(attr).Foreground()]
		bg := vgacon.PaletteRGB[vgacon.Attr(attr).Background()]
		v.styles[attr] = tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
			Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	}
	return v, nil
}

// Render draws the current console frame and shows it.
func (v *Viewer) Render() {
	v.frame = v.console.Snapshot(v.frame)
	cols, rows := v.console.Size()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := v.frame[y*cols+x]
			v.screen.SetContent(x, y, displayRune(cell.Char), nil, v.styles[cell.Attr])
		}
	}

	cx, cy := v.console.Cursor()
	if cx >= cols {
		cx = cols - 1
	}
	v.screen.ShowCursor(cx, cy)
	v.screen.Show()
}

// Run repaints the console until the user presses Escape or Ctrl-C.
func (v *Viewer) Run() error {
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		ticker := time.NewTicker(33 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				// Wake the event loop for a repaint; tcell screens
				// are not safe to draw on from a second goroutine.
				v.screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventInterrupt:
			v.Render()
		case *tcell.EventResize:
			v.screen.Sync()
			v.Render()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return nil
			}
		case nil:
			return nil
		}
	}
}

// Fini restores the host terminal.
func (v *Viewer) Fini() {
	v.screen.Fini()
}

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
