package combinator

import (
	"strings"
	"unicode/utf8"
)

// Literal matches s exactly.
func Literal(s string) Parser[struct{}] {
	return func(c *Cursor) (struct{}, bool) {
		if !strings.HasPrefix(c.Rest(), s) {
			return struct{}{}, false
		}
		c.pos += len(s)
		return struct{}{}, true
	}
}

// AnyChar consumes a single character.
var AnyChar Parser[rune] = func(c *Cursor) (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.Rest())
	c.pos += size
	return r, true
}

// Always succeeds with a without consuming input.
func Always[A any](a A) Parser[A] {
	return func(*Cursor) (A, bool) { return a, true }
}

// Never always fails.
func Never[A any]() Parser[A] {
	return func(*Cursor) (A, bool) {
		var zero A
		return zero, false
	}
}

// PrefixWhile consumes the longest run of characters satisfying pred. It
// always succeeds, possibly with an empty string.
func PrefixWhile(pred func(rune) bool) Parser[string] {
	return func(c *Cursor) (string, bool) {
		start := c.mark()
		for !c.AtEnd() {
			r, size := utf8.DecodeRuneInString(c.Rest())
			if !pred(r) {
				break
			}
			c.pos += size
		}
		return c.src[start:c.pos], true
	}
}

// OneOrMorePrefixWhile is PrefixWhile that fails when nothing matches.
func OneOrMorePrefixWhile(pred func(rune) bool) Parser[string] {
	return FlatMap(PrefixWhile(pred), func(s string) Parser[string] {
		if s == "" {
			return Never[string]()
		}
		return Always(s)
	})
}

// ZeroOrMoreSpacesOrLines skips spaces, tabs and line breaks.
var ZeroOrMoreSpacesOrLines = Map(PrefixWhile(isSpaceOrLine), func(string) struct{} { return struct{}{} })

func isSpaceOrLine(r rune) bool {
	return r == ' ' || r == '\n' || r == '\r' || r == '\t'
}
