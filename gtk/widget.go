// Package vgacongtk provides a GTK3 widget that displays a vgacon
// console.
//
// The widget is a plain DrawingArea painted with cairo: each cell is a
// filled background rectangle plus a monospace glyph in the palette's
// foreground color. A glib timeout queues a redraw at a fixed interval,
// so writes from any goroutine become visible without the writer ever
// touching GTK.
package vgacongtk

import (
	"fmt"

	"github.com/gotk3/gotk3/cairo"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"github.com/monkeswag33/vgacon"
)

// Options configures widget creation
type Options struct {
	Console    *vgacon.Console // console to display (required)
	FontFamily string          // font family (default: "Monospace")
	FontSize   int             // font size in points (default: 14)
	RefreshMS  int             // redraw interval in milliseconds (default: 33)
}

// Widget displays a console grid inside a GTK drawing area.
type Widget struct {
	console *vgacon.Console
	da      *gtk.DrawingArea

	fontFamily string
	fontSize   int

	cols int
	rows int

	// Cell metrics derived from the font size. Monospace fonts sit
	// close enough to a 0.6/1.3 em box that the grid stays aligned;
	// the gotk3 cairo bindings expose no text measurement to do
	// better without dropping to pango.
	cellW  float64
	cellH  float64
	ascent float64

	frame []vgacon.Cell
}

// NewWidget creates a drawing area bound to the given console.
func NewWidget(opts Options) (*Widget, error) {
	if opts.Console == nil {
		return nil, fmt.Errorf("vgacongtk: Options.Console is required")
	}
	if opts.FontFamily == "" {
		opts.FontFamily = "Monospace"
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 14
	}
	if opts.RefreshMS <= 0 {
		opts.RefreshMS = 33
	}

	da, err := gtk.DrawingAreaNew()
	if err != nil {
		return nil, fmt.Errorf("vgacongtk: create drawing area: %w", err)
	}

	cols, rows := opts.Console.Size()
	w := &Widget{
		console:    opts.Console,
		da:         da,
		fontFamily: opts.FontFamily,
		fontSize:   opts.FontSize,
		cols:       cols,
		rows:       rows,
		cellW:      float64(opts.FontSize) * 0.6,
		cellH:      float64(opts.FontSize) * 1.3,
		ascent:     float64(opts.FontSize),
	}

	da.SetSizeRequest(int(w.cellW*float64(cols)), int(w.cellH*float64(rows)))
	da.Connect("draw", w.onDraw)

	glib.TimeoutAdd(uint(opts.RefreshMS), func() bool {
		da.QueueDraw()
		return true
	})

	return w, nil
}

// DrawingArea returns the underlying GTK widget for packing into a
// container.
func (w *Widget) DrawingArea() *gtk.DrawingArea {
	return w.da
}

func (w *Widget) onDraw(da *gtk.DrawingArea, cr *cairo.Context) bool {
	cr.SelectFontFace(w.fontFamily, cairo.FONT_SLANT_NORMAL, cairo.FONT_WEIGHT_NORMAL)
	cr.SetFontSize(float64(w.fontSize))

	w.frame = w.console.Snapshot(w.frame)

	for y := 0; y < w.rows; y++ {
		for x := 0; x < w.cols; x++ {
			cell := w.frame[y*w.cols+x]
			px := float64(x) * w.cellW
			py := float64(y) * w.cellH

			bg := vgacon.PaletteRGB[cell.Attr.Background()]
			cr.SetSourceRGB(float64(bg.R)/255, float64(bg.G)/255, float64(bg.B)/255)
			cr.Rectangle(px, py, w.cellW, w.cellH)
			cr.Fill()

			ch := displayRune(cell.Char)
			if ch == ' ' {
				continue
			}
			fg := vgacon.PaletteRGB[cell.Attr.Foreground()]
			cr.SetSourceRGB(float64(fg.R)/255, float64(fg.G)/255, float64(fg.B)/255)
			cr.MoveTo(px, py+w.ascent)
			cr.ShowText(string(ch))
		}
	}

	w.drawCursor(cr)
	return false
}

// drawCursor paints a block outline at the cursor position.
func (w *Widget) drawCursor(cr *cairo.Context) {
	cx, cy := w.console.Cursor()
	if cx >= w.cols {
		cx = w.cols - 1
	}
	fg := vgacon.PaletteRGB[w.console.Attribute().Foreground()]
	cr.SetSourceRGB(float64(fg.R)/255, float64(fg.G)/255, float64(fg.B)/255)
	cr.SetLineWidth(1)
	cr.Rectangle(float64(cx)*w.cellW+0.5, float64(cy)*w.cellH+0.5, w.cellW-1, w.cellH-1)
	cr.Stroke()
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
