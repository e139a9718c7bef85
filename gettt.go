// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/bddkit/robdd/internal/truthtable"

// GetTT materializes the function denoted by s as an explicit truth table
// over all Varnum variables. It is meant for testing: comparing a BDD's
// result against an independently computed truth table is a strong check
// that And, Or, Xor, Ite and Not agree with their intended semantics,
// since the two representations share no code.
func (b *BDD) GetTT(s Signal) truthtable.Table {
	tt := truthtable.New(int(b.varnum))
	if s.IsZero() {
		return tt
	}
	if s.IsOne() {
		return tt.Not()
	}
	bits := make([]bool, 1<<uint(b.varnum))
	for i := range bits {
		bits[i] = b.evalAt(s, i)
	}
	return truthtable.FromBits(int(b.varnum), bits)
}

// evalAt evaluates s at the assignment encoded by position (bit i of
// position is the value of variable i), following the BDD from the root.
func (b *BDD) evalAt(s Signal, position int) bool {
	for !s.IsConst() {
		level := b.table.level(s)
		hi, lo := b.table.cofactors(s)
		if position&(1<<uint(level)) != 0 {
			s = hi
		} else {
			s = lo
		}
	}
	return s.IsOne()
}
