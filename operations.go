// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// Not returns the negation of f. Thanks to complemented edges this never
// recurses or allocates a node: it just flips the polarity bit, and is not
// counted against NumInvoke.
func (b *BDD) Not(f Signal) Signal {
	return f.Not()
}

// And returns the conjunction of f and g.
func (b *BDD) And(f, g Signal) Signal {
	return b.applyBin(OpAnd, f, g)
}

// Or returns the disjunction of f and g.
func (b *BDD) Or(f, g Signal) Signal {
	return b.applyBin(OpOr, f, g)
}

// Xor returns the exclusive-or of f and g.
func (b *BDD) Xor(f, g Signal) Signal {
	return b.applyBin(OpXor, f, g)
}

// Imp returns the material implication f -> g.
func (b *BDD) Imp(f, g Signal) Signal {
	return b.Or(f.Not(), g)
}

// Equiv returns the bi-implication (f <-> g).
func (b *BDD) Equiv(f, g Signal) Signal {
	return b.Xor(f, g).Not()
}

// Equal reports whether f and g denote the same function. Because the
// unique table is fully canonicalized this is a plain value comparison: two
// signals represent the same function if and only if they are equal.
func (b *BDD) Equal(f, g Signal) bool {
	return f == g
}

// trivialBin evaluates the terminal cases of a commutative binary operator
// without recursing, returning ok == false when neither operand settles the
// result.
func trivialBin(op Op, f, g Signal) (Signal, bool) {
	switch op {
	case OpAnd:
		switch {
		case f.IsZero() || g.IsZero():
			return False, true
		case f.IsOne():
			return g, true
		case g.IsOne():
			return f, true
		case f == g:
			return f, true
		case f == g.Not():
			return False, true
		}
	case OpOr:
		switch {
		case f.IsOne() || g.IsOne():
			return True, true
		case f.IsZero():
			return g, true
		case g.IsZero():
			return f, true
		case f == g:
			return f, true
		case f == g.Not():
			return True, true
		}
	case OpXor:
		switch {
		case f == g:
			return False, true
		case f == g.Not():
			return True, true
		case f.IsZero():
			return g, true
		case g.IsZero():
			return f, true
		case f.IsOne():
			return g.Not(), true
		case g.IsOne():
			return f.Not(), true
		}
	}
	return False, false
}

// applyBin is the single recursive engine behind And, Or and Xor. Every
// entry into the recursion, including ones resolved by a terminal case, is
// counted against NumInvoke; the operator cache is only consulted once the
// terminal cases have been ruled out, and is keyed on the commutativity-
// canonicalized pair (see canonPair).
func (b *BDD) applyBin(op Op, f, g Signal) Signal {
	b.invokes++
	if res, ok := trivialBin(op, f, g); ok {
		return res
	}
	key := canonPair(op, f, g)
	if res, ok := b.cache.apply[key]; ok {
		return res
	}
	level := min32(b.topLevel(f), b.topLevel(g))
	fhi, flo := b.restrict(f, level, b.topLevel(f))
	ghi, glo := b.restrict(g, level, b.topLevel(g))
	hi := b.applyBin(op, fhi, ghi)
	lo := b.applyBin(op, flo, glo)
	res := b.table.mk(level, lo, hi)
	b.cache.apply[key] = res
	return res
}

// Ite computes the BDD for (f & g) | (!f & h), the if-then-else operator,
// in a single pass rather than composing three binary operations.
func (b *BDD) Ite(f, g, h Signal) Signal {
	b.invokes++
	switch {
	case f.IsOne():
		return g
	case f.IsZero():
		return h
	case g == h:
		return g
	case g.IsOne() && h.IsZero():
		return f
	case g.IsZero() && h.IsOne():
		return f.Not()
	}
	key := canonIte(f, g, h)
	if res, ok := b.cache.ite[key]; ok {
		return res
	}
	level := min32(min32(b.topLevel(f), b.topLevel(g)), b.topLevel(h))
	fhi, flo := b.restrict(f, level, b.topLevel(f))
	ghi, glo := b.restrict(g, level, b.topLevel(g))
	hhi, hlo := b.restrict(h, level, b.topLevel(h))
	hi := b.Ite(fhi, ghi, hhi)
	lo := b.Ite(flo, glo, hlo)
	res := b.table.mk(level, lo, hi)
	b.cache.ite[key] = res
	return res
}
