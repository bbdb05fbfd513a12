package cli

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/monkeswag33/vgacon"
)

// Options configures viewer creation
type Options struct {
	Console   *vgacon.Console // console to display (required)
	Out       *os.File        // destination terminal (default: os.Stdout)
	FrameRate int             // repaints per second (default: 30)
	OffsetX   int             // X offset from the host terminal's left edge
	OffsetY   int             // Y offset from the host terminal's top edge
}

// Viewer paints a console onto the host terminal at a fixed frame rate.
type Viewer struct {
	mu sync.Mutex

	console  *vgacon.Console
	out      *os.File
	renderer *Renderer
	interval time.Duration

	running bool
	stop    chan struct{}
	done    chan struct{}
}

// New creates a viewer for the given console. It fails when the output
// is not a terminal or is too small to hold the console grid.
func New(opts Options) (*Viewer, error) {
	if opts.Console == nil {
		return nil, fmt.Errorf("cli: Options.Console is required")
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = 30
	}

	fd := int(opts.Out.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cli: output is not a terminal")
	}

	cols, rows := opts.Console.Size()
	if w, h, err := term.GetSize(fd); err == nil {
		if w < cols+opts.OffsetX || h < rows+opts.OffsetY {
			return nil, fmt.Errorf("cli: terminal is %dx%d, console needs %dx%d at offset (%d, %d)",
				w, h, cols, rows, opts.OffsetX, opts.OffsetY)
		}
	}

	return &Viewer{
		console:  opts.Console,
		out:      opts.Out,
		renderer: newRenderer(cols, rows, opts.OffsetX, opts.OffsetY),
		interval: time.Second / time.Duration(opts.FrameRate),
	}, nil
}

// Start clears the host terminal and begins repainting in the
// background until Stop is called.
func (v *Viewer) Start() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.running {
		return
	}
	v.running = true
	v.stop = make(chan struct{})
	v.done = make(chan struct{})

	fmt.Fprint(v.out, "\x1b[2J\x1b[H")
	v.renderer.Invalidate()

	go func() {
		defer close(v.done)
		ticker := time.NewTicker(v.interval)
		defer ticker.Stop()
		for {
			select {
			case <-v.stop:
				return
			case <-ticker.C:
				v.Render()
			}
		}
	}()
}

// Stop halts repainting and restores the host terminal attributes.
func (v *Viewer) Stop() {
	v.mu.Lock()
	if !v.running {
		v.mu.Unlock()
		return
	}
	v.running = false
	close(v.stop)
	done := v.done
	v.mu.Unlock()

	<-done

	_, rows := v.console.Size()
	fmt.Fprintf(v.out, "\x1b[0m\x1b[%d;1H\n", rows+1)
}

// Render paints one frame immediately.
func (v *Viewer) Render() {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprint(v.out, v.renderer.paint(v.console))
}
