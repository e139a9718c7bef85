// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// topLevel returns the level tested at the root of s, or Varnum when s is a
// constant: using Varnum as a sentinel lets callers take the min of several
// operands' levels without special-casing constants.
func (b *BDD) topLevel(s Signal) int32 {
	if s.IsConst() {
		return b.varnum
	}
	return b.table.level(s)
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// restrict returns the branch of s for the current recursion level: s's own
// cofactors if s is tested at level, or s unchanged if level is below the
// variable s depends on (s does not mention that variable).
func (b *BDD) restrict(s Signal, level, slevel int32) (hi, lo Signal) {
	if slevel != level {
		return s, s
	}
	return b.table.cofactors(s)
}
