// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "fmt"

// Makeset returns the signal for the cube (conjunction) of the variables in
// vars, in their positive form. It is such that Scanset(Makeset(vars))
// returns (a permutation of) vars.
func (b *BDD) Makeset(vars []int) (Signal, error) {
	res := True
	for _, v := range vars {
		lit, err := b.Ithvar(v)
		if err != nil {
			return False, err
		}
		res = b.And(res, lit)
	}
	return res, nil
}

// Scanset returns the variables found in the cube built by Makeset, obtained
// by following the then-branch of every node in turn.
func (b *BDD) Scanset(cube Signal) ([]int, error) {
	if cube.IsConst() {
		if cube.IsOne() {
			return []int{}, nil
		}
		return nil, fmt.Errorf("robdd: Scanset called on a non-cube signal")
	}
	var res []int
	for s := cube; !s.IsConst(); {
		if s.Complement() {
			return nil, fmt.Errorf("robdd: Scanset called on a non-cube signal")
		}
		n := b.table.at(s)
		if n.lo != False {
			return nil, fmt.Errorf("robdd: Scanset called on a non-cube signal")
		}
		res = append(res, int(n.level))
		s = n.hi
	}
	return res, nil
}

// Exist returns the existential quantification of f over the variables
// named by the cube varset (as returned by Makeset): Exist(f, Vs) = OR over
// every assignment of Vs of f restricted to that assignment.
func (b *BDD) Exist(f, varset Signal) Signal {
	if varset.IsOne() || f.IsConst() {
		return f
	}
	key := existKey{f, varset}
	if res, ok := b.cache.exist[key]; ok {
		return res
	}
	flevel, vlevel := b.topLevel(f), b.topLevel(varset)
	var res Signal
	switch {
	case vlevel < flevel:
		// f does not depend on the variable at the top of varset: skip it.
		vhi, _ := b.table.cofactors(varset)
		res = b.Exist(f, vhi)
	case vlevel == flevel:
		fhi, flo := b.table.cofactors(f)
		vhi, _ := b.table.cofactors(varset)
		res = b.Or(b.Exist(fhi, vhi), b.Exist(flo, vhi))
	default:
		fhi, flo := b.table.cofactors(f)
		res = b.table.mk(flevel, b.Exist(flo, varset), b.Exist(fhi, varset))
	}
	b.cache.exist[key] = res
	return res
}

// AppEx applies the binary operator op to f and g, then existentially
// quantifies the result over varset. It is equivalent to, but typically much
// cheaper than, calling the operator and Exist in sequence, since it avoids
// building the full intermediate result.
func (b *BDD) AppEx(op Op, f, g, varset Signal) Signal {
	if varset.IsOne() {
		return b.applyBin(op, f, g)
	}
	if f.IsConst() && g.IsConst() {
		res, _ := trivialBin(op, f, g)
		return res
	}
	key := appexKey{op, f, g, varset}
	if res, ok := b.cache.appex[key]; ok {
		return res
	}
	flevel, glevel := b.topLevel(f), b.topLevel(g)
	level := min32(flevel, glevel)
	vlevel := b.topLevel(varset)
	fhi, flo := b.restrict(f, level, flevel)
	ghi, glo := b.restrict(g, level, glevel)
	var res Signal
	switch {
	case vlevel < level:
		// neither f nor g depends on the variable at the top of varset: skip it.
		vhi, _ := b.table.cofactors(varset)
		res = b.AppEx(op, f, g, vhi)
	case vlevel == level:
		vhi, _ := b.table.cofactors(varset)
		res = b.Or(b.AppEx(op, fhi, ghi, vhi), b.AppEx(op, flo, glo, vhi))
	default:
		res = b.table.mk(level, b.AppEx(op, flo, glo, varset), b.AppEx(op, fhi, ghi, varset))
	}
	b.cache.appex[key] = res
	return res
}

// AndExist returns the relational composition of f and g with respect to
// varset: Exist(varset, f & g).
func (b *BDD) AndExist(f, g, varset Signal) Signal {
	return b.AppEx(OpAnd, f, g, varset)
}
