// Package vgaconqt provides a Qt widget that displays a vgacon console.
//
// Rendering mirrors the GTK frontend: each cell is a filled rectangle
// plus a monospace glyph, repainted from a console snapshot on a Qt
// timer so writers never have to run on the Qt main thread.
package vgaconqt

import (
	"fmt"

	"github.com/mappu/miqt/qt"

	"github.com/monkeswag33/vgacon"
)

// Options configures widget creation
type Options struct {
	Console    *vgacon.Console // console to display (required)
	FontFamily string          // font family (default: "Monospace")
	FontSize   int             // font size in points (default: 14)
	RefreshMS  int             // repaint interval in milliseconds (default: 33)
}

// Widget displays a console grid inside a QWidget.
type Widget struct {
	console *vgacon.Console
	widget  *qt.QWidget
	font    *qt.QFont
	timer   *qt.QTimer

	cols int
	rows int

	charW  int
	charH  int
	ascent int

	frame  []vgacon.Cell
	colors [16]*qt.QColor
}

// NewWidget creates a widget bound to the given console. It must be
// called on the Qt main thread after QApplication exists.
func NewWidget(opts Options) (*Widget, error) {
	if opts.Console == nil {
		return nil, fmt.Errorf("vgaconqt: Options.Console is required")
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

	cols, rows := opts.Console.Size()
	w := &Widget{
		console: opts.Console,
		widget:  qt.NewQWidget2(),
		font:    qt.NewQFont6(opts.FontFamily, opts.FontSize),
		cols:    cols,
		rows:    rows,
	}

	metrics := qt.NewQFontMetrics(w.font)
	w.charW = metrics.AverageCharWidth()
	w.charH = metrics.Height()
	w.ascent = metrics.Ascent()

	for i, rgb := range vgacon.PaletteRGB {
		w.colors[i] = qt.NewQColor3(int(rgb.R), int(rgb.G), int(rgb.B))
	}

	w.widget.SetMinimumSize2(cols*w.charW, rows*w.charH)
	w.widget.OnPaintEvent(func(super func(event *qt.QPaintEvent), event *qt.QPaintEvent) {
		w.paint()
	})

	w.timer = qt.NewQTimer2(w.widget.QObject)
	w.timer.OnTimeout(func() {
		w.widget.Update()
	})
	w.timer.Start(opts.RefreshMS)

	return w, nil
}

// Widget returns the underlying QWidget for embedding in a window.
func (w *Widget) Widget() *qt.QWidget {
	return w.widget
}

func (w *Widget) paint() {
	painter := qt.NewQPainter2(w.widget.QPaintDevice)
	defer painter.End()
	painter.SetFont(w.font)

	w.frame = w.console.Snapshot(w.frame)

	for y := 0; y < w.rows; y++ {
		for x := 0; x < w.cols; x++ {
			cell := w.frame[y*w.cols+x]
			px := x * w.charW
			py := y * w.charH

			painter.FillRect5(px, py, w.charW, w.charH, w.colors[cell.Attr.Background()])

			ch := displayRune(cell.Char)
			if ch == ' ' {
				continue
			}
			painter.SetPen(w.colors[cell.Attr.Foreground()])
			painter.DrawText3(px, py+w.ascent, string(ch))
		}
	}

	w.drawCursor(painter)
}

// drawCursor fills the cursor cell's underline strip in the console's
// foreground color.
func (w *Widget) drawCursor(painter *qt.QPainter) {
	cx, cy := w.console.Cursor()
	if cx >= w.cols {
		cx = w.cols - 1
	}
	color := w.colors[w.console.Attribute().Foreground()]
	painter.FillRect5(cx*w.charW, cy*w.charH+w.charH-2, w.charW, 2, color)
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
