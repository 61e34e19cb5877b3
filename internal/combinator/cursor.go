// Package combinator provides backtracking parser combinators over an
// immutable source text.
//
// A Parser reads from a Cursor, which is only an offset into the source.
// Every parser in this package leaves the cursor exactly where it found it
// when it fails, so composite parsers can backtrack by restoring an offset
// instead of copying text.
package combinator

// Cursor is a read position inside an immutable source text.
type Cursor struct {
	src string
	pos int
}

// NewCursor returns a cursor positioned at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src}
}

// Offset returns the byte offset of the cursor in the source.
func (c *Cursor) Offset() int { return c.pos }

// Rest returns the unconsumed part of the source.
func (c *Cursor) Rest() string { return c.src[c.pos:] }

// AtEnd reports whether the whole source has been consumed.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.src) }

func (c *Cursor) mark() int { return c.pos }

func (c *Cursor) reset(mark int) { c.pos = mark }

// Parser tries to match a value at the cursor. On failure it returns false
// and must not move the cursor.
type Parser[A any] func(c *Cursor) (A, bool)

// Run applies p to text and returns the match, whether it succeeded and the
// unconsumed remainder.
func Run[A any](p Parser[A], text string) (A, bool, string) {
	c := NewCursor(text)
	match, ok := p(c)
	return match, ok, c.Rest()
}
