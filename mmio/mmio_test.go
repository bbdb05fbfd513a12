package mmio

import "testing"

func TestNewRAM(t *testing.T) {
	d := NewRAM(2000)
	if d.Len() != 2000 {
		t.Errorf("Expected 2000 cells, got %d", d.Len())
	}
	for i := 0; i < d.Len(); i++ {
		if d.Load(i) != 0 {
			t.Fatalf("Expected zeroed cell at %d, got %#04x", i, d.Load(i))
		}
	}
}

func TestStoreLoad(t *testing.T) {
	d := NewRAM(16)
	d.Store(0, 0x0f41)
	d.Store(15, 0x1e42)

	if v := d.Load(0); v != 0x0f41 {
		t.Errorf("Expected 0x0f41 at cell 0, got %#04x", v)
	}
	if v := d.Load(15); v != 0x1e42 {
		t.Errorf("Expected 0x1e42 at cell 15, got %#04x", v)
	}
	if v := d.Load(1); v != 0 {
		t.Errorf("Expected neighboring cell untouched, got %#04x", v)
	}
}

func TestStoreOverwrites(t *testing.T) {
	d := NewRAM(4)
	d.Store(2, 0x1111)
	d.Store(2, 0x2222)
	if v := d.Load(2); v != 0x2222 {
		t.Errorf("Expected the latest store to win, got %#04x", v)
	}
}
