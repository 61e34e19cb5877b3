package combinator

// Pair holds the values of two sequenced parsers.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Tuple3 holds the values of three sequenced parsers.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 holds the values of four sequenced parsers.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Tuple5 holds the values of five sequenced parsers.
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Tuple6 holds the values of six sequenced parsers.
type Tuple6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

// Tuple7 holds the values of seven sequenced parsers.
type Tuple7[A, B, C, D, E, F, G any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

// Zip runs a then b. If b fails, the cursor returns to where a started.
func Zip[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(c *Cursor) (Pair[A, B], bool) {
		start := c.mark()
		ma, ok := a(c)
		if !ok {
			return Pair[A, B]{}, false
		}
		mb, ok := b(c)
		if !ok {
			c.reset(start)
			return Pair[A, B]{}, false
		}
		return Pair[A, B]{First: ma, Second: mb}, true
	}
}

func Zip3[A, B, C any](a Parser[A], b Parser[B], c Parser[C]) Parser[Tuple3[A, B, C]] {
	return Map(Zip(a, Zip(b, c)), func(p Pair[A, Pair[B, C]]) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{p.First, p.Second.First, p.Second.Second}
	})
}

func Zip4[A, B, C, D any](a Parser[A], b Parser[B], c Parser[C], d Parser[D]) Parser[Tuple4[A, B, C, D]] {
	return Map(Zip(a, Zip3(b, c, d)), func(p Pair[A, Tuple3[B, C, D]]) Tuple4[A, B, C, D] {
		t := p.Second
		return Tuple4[A, B, C, D]{p.First, t.V1, t.V2, t.V3}
	})
}

func Zip5[A, B, C, D, E any](a Parser[A], b Parser[B], c Parser[C], d Parser[D], e Parser[E]) Parser[Tuple5[A, B, C, D, E]] {
	return Map(Zip(a, Zip4(b, c, d, e)), func(p Pair[A, Tuple4[B, C, D, E]]) Tuple5[A, B, C, D, E] {
		t := p.Second
		return Tuple5[A, B, C, D, E]{p.First, t.V1, t.V2, t.V3, t.V4}
	})
}

func Zip6[A, B, C, D, E, F any](a Parser[A], b Parser[B], c Parser[C], d Parser[D], e Parser[E], f Parser[F]) Parser[Tuple6[A, B, C, D, E, F]] {
	return Map(Zip(a, Zip5(b, c, d, e, f)), func(p Pair[A, Tuple5[B, C, D, E, F]]) Tuple6[A, B, C, D, E, F] {
		t := p.Second
		return Tuple6[A, B, C, D, E, F]{p.First, t.V1, t.V2, t.V3, t.V4, t.V5}
	})
}

func Zip7[A, B, C, D, E, F, G any](a Parser[A], b Parser[B], c Parser[C], d Parser[D], e Parser[E], f Parser[F], g Parser[G]) Parser[Tuple7[A, B, C, D, E, F, G]] {
	return Map(Zip(a, Zip6(b, c, d, e, f, g)), func(p Pair[A, Tuple6[B, C, D, E, F, G]]) Tuple7[A, B, C, D, E, F, G] {
		t := p.Second
		return Tuple7[A, B, C, D, E, F, G]{p.First, t.V1, t.V2, t.V3, t.V4, t.V5, t.V6}
	})
}

// Sequence runs ps in order and collects their values. Any failure puts the
// cursor back where the first parser started.
func Sequence[A any](ps ...Parser[A]) Parser[[]A] {
	return func(c *Cursor) ([]A, bool) {
		start := c.mark()
		values := make([]A, 0, len(ps))
		for _, p := range ps {
			v, ok := p(c)
			if !ok {
				c.reset(start)
				return nil, false
			}
			values = append(values, v)
		}
		return values, true
	}
}
