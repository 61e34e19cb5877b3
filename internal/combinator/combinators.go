package combinator

// Map transforms the value of a successful match.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(c *Cursor) (B, bool) {
		a, ok := p(c)
		if !ok {
			var zero B
			return zero, false
		}
		return f(a), true
	}
}

// FlatMap runs p, builds the next parser from its value and runs it. The
// pair is atomic: if either step fails the cursor goes back to where p
// started.
func FlatMap[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(c *Cursor) (B, bool) {
		start := c.mark()
		a, ok := p(c)
		if ok {
			if b, ok := f(a)(c); ok {
				return b, true
			}
		}
		c.reset(start)
		var zero B
		return zero, false
	}
}

// OneOf returns the first successful match among ps, tried in order.
func OneOf[A any](ps ...Parser[A]) Parser[A] {
	return func(c *Cursor) (A, bool) {
		for _, p := range ps {
			if a, ok := p(c); ok {
				return a, true
			}
		}
		var zero A
		return zero, false
	}
}

// ZeroOrMore matches p as many times as possible. It never fails.
func ZeroOrMore[A any](p Parser[A]) Parser[[]A] {
	return ZeroOrMoreSeparatedBy(p, Literal(""))
}

// ZeroOrMoreSeparatedBy matches p repeatedly, expecting sep after each match.
// It stops at the first failure of either p or sep and returns what it has
// collected. A separator not followed by another p is left unconsumed.
// A match of p that consumes nothing ends the repetition like a failure and
// is not collected.
func ZeroOrMoreSeparatedBy[A, S any](p Parser[A], sep Parser[S]) Parser[[]A] {
	return func(c *Cursor) ([]A, bool) {
		matches := []A{}
		rest := c.mark()
		for {
			before := c.mark()
			a, ok := p(c)
			if !ok || c.mark() == before {
				break
			}
			rest = c.mark()
			matches = append(matches, a)
			if _, ok := sep(c); !ok {
				return matches, true
			}
		}
		c.reset(rest)
		return matches, true
	}
}

// Not consumes one character if p does not match at the cursor. p is only
// peeked at: its consumption is always undone.
func Not[A any](p Parser[A]) Parser[rune] {
	return func(c *Cursor) (rune, bool) {
		start := c.mark()
		if _, ok := p(c); ok {
			c.reset(start)
			return 0, false
		}
		return AnyChar(c)
	}
}

// StringUntil returns the text up to, but not including, the first place
// where terminator matches. Without a terminator it consumes everything.
func StringUntil[A any](terminator Parser[A]) Parser[string] {
	chars := ZeroOrMore(Not(terminator))
	return func(c *Cursor) (string, bool) {
		start := c.mark()
		chars(c)
		return c.src[start:c.pos], true
	}
}

// OrElse replaces a failed match of p with fallback without consuming input.
func OrElse[A any](p Parser[A], fallback A) Parser[A] {
	return func(c *Cursor) (A, bool) {
		if a, ok := p(c); ok {
			return a, true
		}
		return fallback, true
	}
}
