package cli

import (
	"strings"
	"testing"

	"github.com/monkeswag33/vgacon"
)

func TestDisplayRune(t *testing.T) {
	tests := []struct {
		ch   byte
		want rune
	}{
		{'A', 'A'},
		{vgacon.Space, ' '},
		{vgacon.Erased, ' '},
		{vgacon.Placeholder, '■'},
		{0x07, '■'},
		{0x7f, '■'},
	}
	for _, tt := range tests {
		if got := displayRune(tt.ch); got != tt.want {
			t.Errorf("displayRune(%#02x): expected %q, got %q", tt.ch, tt.want, got)
		}
	}
}

func TestPaintEmitsChangedCellsOnly(t *testing.T) {
	c, err := vgacon.New(10, 4, vgacon.NewAttr(vgacon.White, vgacon.Black), nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	r := newRenderer(10, 4, 0, 0)

	c.WriteString("hi")
	first := r.paint(c)
	if !strings.Contains(first, "h") || !strings.Contains(first, "i") {
		t.Errorf("Expected first frame to draw the written cells, got %q", first)
	}

	// Nothing changed: the second frame only repositions the cursor.
	second := r.paint(c)
	if strings.ContainsAny(second, "hi") {
		t.Errorf("Expected no cell output for an unchanged frame, got %q", second)
	}

	c.WriteString("!")
	third := r.paint(c)
	if !strings.Contains(third, "!") {
		t.Errorf("Expected the new cell in the third frame, got %q", third)
	}
	if strings.Contains(third, "h") {
		t.Errorf("Expected unchanged cells skipped, got %q", third)
	}
}
