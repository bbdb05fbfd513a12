package vgacon

// Character codes the console gives meaning beyond printable ASCII.
const (
	// Erased marks a cell cleared by backspace. It is distinct from a
	// visible space so the end of a row's content can be found again
	// when the cursor backs up across a line boundary.
	Erased byte = 0x00

	// Placeholder is rendered in place of any byte the console cannot
	// display, so dropped data stays visible instead of vanishing.
	Placeholder byte = 0xfe

	// Space fills cells exposed by scrolling and Clear.
	Space byte = ' '
)

// Cell is one character position in the grid: a character code plus the
// attribute it was written with.
type Cell struct {
	Char byte
	Attr Attr
}

// pack returns the cell in the device format: character code in the low
// byte, attribute in the high byte, so a little-endian 16-bit store lays
// out character-then-attribute in memory. Display hardware depends on
// exactly this layout.
func (c Cell) pack() uint16 {
	return uint16(c.Attr)<<8 | uint16(c.Char)
}

// unpackCell is the inverse of pack.
func unpackCell(v uint16) Cell {
	return Cell{Char: byte(v), Attr: Attr(v >> 8)}
}
