// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "fmt"

var nextReplacerID = 1

// Replacer is an association list used to substitute variables in a BDD,
// built with NewReplacer.
type Replacer interface {
	// Replace returns the level that level should become, and whether level
	// is affected by the substitution at all.
	Replace(level int32) (int32, bool)
	// ID returns a per-Replacer identifier, used to key the replace cache.
	ID() int
}

type replacer struct {
	id    int
	image []int32
	last  int32
}

func (r *replacer) Replace(level int32) (int32, bool) {
	if level > r.last {
		return level, false
	}
	return r.image[level], true
}

func (r *replacer) ID() int {
	return r.id
}

// NewReplacer returns a Replacer substituting oldvars[k] with newvars[k] for
// every k. The two slices must have the same length, contain no duplicate
// within themselves, and only name variables in [0, Varnum).
func (b *BDD) NewReplacer(oldvars, newvars []int) (Replacer, error) {
	if len(oldvars) != len(newvars) {
		return nil, fmt.Errorf("%w: oldvars and newvars have different lengths", ErrReplacer)
	}
	varnum := int(b.varnum)
	seen := make([]bool, varnum)
	image := make([]int32, varnum)
	for k := range image {
		image[k] = int32(k)
	}
	var last int32
	for k, v := range oldvars {
		if v < 0 || v >= varnum {
			return nil, fmt.Errorf("%w: oldvars[%d]=%d out of range", ErrReplacer, k, v)
		}
		if newvars[k] < 0 || newvars[k] >= varnum {
			return nil, fmt.Errorf("%w: newvars[%d]=%d out of range", ErrReplacer, k, newvars[k])
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: duplicate variable %d in oldvars", ErrReplacer, v)
		}
		seen[v] = true
		image[v] = int32(newvars[k])
		if int32(v) > last {
			last = int32(v)
		}
	}
	for _, v := range newvars {
		if seen[v] && int(image[v]) != v {
			return nil, fmt.Errorf("%w: variable %d appears in both oldvars and newvars", ErrReplacer, v)
		}
	}
	id := nextReplacerID
	nextReplacerID++
	return &replacer{id: id, image: image, last: last}, nil
}

// Replace computes the result of substituting variables in f according to r.
func (b *BDD) Replace(f Signal, r Replacer) Signal {
	return b.replace(f, r)
}

func (b *BDD) replace(f Signal, r Replacer) Signal {
	if f.IsConst() {
		return f
	}
	image, affected := r.Replace(b.table.level(f))
	if !affected {
		return f
	}
	key := replaceKey{r.ID(), f}
	if res, ok := b.cache.replace[key]; ok {
		return res
	}
	hi, lo := b.table.cofactors(f)
	newhi := b.replace(hi, r)
	newlo := b.replace(lo, r)
	res := b.correctify(image, newlo, newhi)
	b.cache.replace[key] = res
	return res
}

// correctify rebuilds a node at the substituted level, sifting it below any
// node of lo or hi that now sits above where the substituted variable
// belongs in the declared order.
func (b *BDD) correctify(level int32, lo, hi Signal) Signal {
	loLevel, hiLevel := b.topLevel(lo), b.topLevel(hi)
	if level < loLevel && level < hiLevel {
		return b.table.mk(level, lo, hi)
	}
	invariant(level != loLevel && level != hiLevel,
		"substituted level %d collides with an existing level", level)
	if loLevel == hiLevel {
		lhi, llo := b.table.cofactors(lo)
		hhi, hlo := b.table.cofactors(hi)
		left := b.correctify(level, llo, hlo)
		right := b.correctify(level, lhi, hhi)
		return b.table.mk(loLevel, left, right)
	}
	if loLevel < hiLevel {
		lhi, llo := b.table.cofactors(lo)
		left := b.correctify(level, llo, hi)
		right := b.correctify(level, lhi, hi)
		return b.table.mk(loLevel, left, right)
	}
	hhi, hlo := b.table.cofactors(hi)
	left := b.correctify(level, lo, hlo)
	right := b.correctify(level, lo, hhi)
	return b.table.mk(hiLevel, left, right)
}
