// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package robdd defines a concrete type for Reduced Ordered Binary Decision
// Diagrams (ROBDD) with complemented edges, a data structure used to
// efficiently represent Boolean functions over a fixed set of variables, or
// equivalently sets of Boolean vectors of a fixed size.
//
// Basics
//
// A BDD has a fixed number of variables, declared when it is created with
// New, each represented by an (integer) index in the range [0, Varnum),
// called its level. Every operation returns a Signal: a small value type
// that names a node together with a polarity bit, so that a function and
// its negation are represented by the very same node and differ only in
// that bit. Signal values can be compared with ==, used as map keys, and
// copied freely.
//
// Complemented edges
//
// Representing negation as a bit on the edge, instead of as a distinct node,
// roughly halves the number of nodes needed to represent a family of
// functions closed under negation: And, Or, Xor and Ite all propagate the
// complement bit algebraically rather than building mirror sub-trees for
// each polarity. The only invariant this buys its keep with is that the
// then-edge stored inside a node is never itself complemented; see mk in
// node.go.
package robdd

import "fmt"

// BDD is a single instance of a Binary Decision Diagram manager: a unique
// table of shared nodes, a set of declared variables, and the operator
// caches used to memoize recursive computations over them. All exported
// operations are methods on *BDD.
type BDD struct {
	varnum int32
	table  *uniquetable
	cache  *caches

	invokes int64 // total recursive calls made to a Boolean operator
}

// New creates a BDD manager declaring varnum variables, numbered 0 to
// varnum-1 in the order given. Options such as Nodesize or Cachesize can be
// used to tune the initial capacity of the internal tables.
func New(varnum int, opts ...Option) (*BDD, error) {
	if varnum < 0 {
		return nil, fmt.Errorf("%w: negative number of variables (%d)", ErrBadVariable, varnum)
	}
	c := makeconfigs(varnum)
	for _, opt := range opts {
		opt(c)
	}
	b := &BDD{
		varnum: int32(varnum),
		table:  newUniqueTable(varnum),
		cache:  makecaches(c.cachesize),
	}
	b.table.nodes = make([]node, 1, c.nodesize)
	return b, nil
}

// Varnum returns the number of variables declared for this BDD.
func (b *BDD) Varnum() int {
	return int(b.varnum)
}

// Literal returns the signal of the i'th variable, or its negation when neg
// is true. The underlying node is created on first use and shared by every
// later call for the same variable, courtesy of the unique table; it starts
// out unreferenced, like any other freshly built signal, and only stays
// live once the caller (or a parent node) references it.
func (b *BDD) Literal(i int, neg bool) (Signal, error) {
	if i < 0 || i >= int(b.varnum) {
		return False, fmt.Errorf("%w: variable %d (varnum is %d)", ErrBadVariable, i, b.varnum)
	}
	pos := b.table.mk(int32(i), False, True)
	if neg {
		return pos.Not(), nil
	}
	return pos, nil
}

// Ithvar returns the signal for the i'th variable in its positive form.
func (b *BDD) Ithvar(i int) (Signal, error) {
	return b.Literal(i, false)
}

// NIthvar returns the signal for the negation of the i'th variable.
func (b *BDD) NIthvar(i int) (Signal, error) {
	return b.Literal(i, true)
}

// From returns one of the two constant signals.
func (b *BDD) From(v bool) Signal {
	if v {
		return True
	}
	return False
}

// Ref increments the external reference count of s. It returns s so calls
// can be chained, e.g. f := b.Ref(b.And(x, y)).
func (b *BDD) Ref(s Signal) Signal {
	b.table.ref(s)
	return s
}

// Deref decrements the external reference count of s. It panics if s has no
// outstanding references, since that indicates a double free by the caller.
func (b *BDD) Deref(s Signal) Signal {
	b.table.deref(s)
	return s
}

// NumNodesFrom returns the number of distinct nodes reachable from s, not
// counting the constant nodes.
func (b *BDD) NumNodesFrom(s Signal) int {
	seen := map[int]bool{}
	var walk func(Signal)
	walk = func(s Signal) {
		if s.IsConst() {
			return
		}
		idx := s.index()
		if seen[idx] {
			return
		}
		seen[idx] = true
		n := b.table.at(s)
		walk(n.lo)
		walk(n.hi)
	}
	walk(s)
	return len(seen)
}

// NumNodes returns the number of live non-terminal nodes currently held by
// at least one reference, across the whole BDD rather than any particular
// signal. A well-behaved caller that dereferences every signal it has
// referenced should observe this drop back to zero.
func (b *BDD) NumNodes() int {
	return b.table.liveCount()
}

// NumInvoke returns the total number of recursive calls made so far to any
// of the Boolean operators And, Or, Xor and Ite (Not is a bit flip and is
// not counted). It is monotonically
// increasing; use ResetInvokeCount to measure a single computation in
// isolation.
func (b *BDD) NumInvoke() int {
	return int(b.invokes)
}

// ResetInvokeCount resets the counter returned by NumInvoke to zero.
func (b *BDD) ResetInvokeCount() {
	b.invokes = 0
}

// Size returns the total number of node-table slots ever allocated by this
// BDD, including the reserved terminal slot. Unlike NumNodes it also counts
// dead nodes, whose slots are never reclaimed.
func (b *BDD) Size() int {
	return b.table.size()
}
