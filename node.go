// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// A node is a vertex of the shared, reduced, ordered BDD forest maintained by
// a BDD value. Following the then-edge normalization invariant, hi is never
// complemented: any complement bit that would otherwise land on hi is pushed
// onto the signal returned to the caller instead (see mk). This keeps a
// variable and its negation sharing the very same node.
type node struct {
	level  int32  // position of the variable in the declared order
	lo     Signal // else branch, possibly complemented
	hi     Signal // then branch, never complemented
	refcou int32  // external reference count
}

// nodeKey is the unique-table lookup key: a normalized (level, lo, hi)
// triplet identifies at most one node, which is what makes the structure a
// *reduced* BDD (no two nodes test the same variable over the same pair of
// children) and, combined with a fixed level order, an *ordered* one.
type nodeKey struct {
	level int32
	lo    Signal
	hi    Signal
}

// uniquetable is a Go-native hashmap implementation of the unicity table,
// generalizing the map-based approach of the runtime-hashmap variant to
// complemented edges: we key directly on the (level, lo, hi) triplet instead
// of hashing it into a byte buffer, since Go lets us use a plain struct as a
// map key with no manual hashing code to maintain.
type uniquetable struct {
	nodes  []node
	unique map[nodeKey]int
}

func newUniqueTable(varnum int) *uniquetable {
	t := &uniquetable{
		nodes:  make([]node, 1, 2*varnum+2), // index 0 is the reserved terminal slot
		unique: make(map[nodeKey]int, 2*varnum+2),
	}
	return t
}

// mk returns the (possibly shared) signal for the node (level, lo, hi),
// applying both BDD reduction rules: the redundant-test rule (lo == hi, no
// new node is created) and the then-edge normalization that canonicalizes
// complemented edges so that isomorphic functions of opposite polarity
// always map to the same underlying node.
func (t *uniquetable) mk(level int32, lo, hi Signal) Signal {
	if lo == hi {
		return lo
	}
	comp := false
	if hi.Complement() {
		lo, hi = lo.Not(), hi.Not()
		comp = true
	}
	key := nodeKey{level, lo, hi}
	if idx, ok := t.unique[key]; ok {
		return mksignal(idx, comp)
	}
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{level: level, lo: lo, hi: hi, refcou: 0})
	t.unique[key] = idx
	// A freshly built node starts out dead-on-arrival, same as the teacher's
	// own mknode: it only starts holding references to its own children once
	// something external makes it live in turn (see ref).
	return mksignal(idx, comp)
}

// at returns the node referenced by s, without regard to s's own complement
// bit: callers that need the actual (possibly negated) children must use
// cofactors instead.
func (t *uniquetable) at(s Signal) node {
	return t.nodes[s.index()]
}

func (t *uniquetable) level(s Signal) int32 {
	return t.at(s).level
}

// cofactors returns the high (then) and low (else) signals of s, with s's own
// complement bit correctly propagated to both children. This is the single
// choke point every Boolean operator and traversal routine goes through, so
// that the complement-propagation arithmetic is written and verified exactly
// once.
func (t *uniquetable) cofactors(s Signal) (hi, lo Signal) {
	n := t.at(s)
	if s.Complement() {
		return n.hi.Not(), n.lo.Not()
	}
	return n.hi, n.lo
}

// ref adds one reference to s. A node's refcount only reflects references
// held by things outside the node graph itself (an explicit Ref, or a live
// parent node); it is not bumped at creation time. So the 0->1 transition,
// and only that transition, means s has just become live, which in turn
// makes its own children live: the reference s holds on each of them has to
// start existing right then, not before.
func (t *uniquetable) ref(s Signal) {
	if s.IsConst() {
		return
	}
	idx := s.index()
	t.nodes[idx].refcou++
	if t.nodes[idx].refcou == 1 {
		n := t.nodes[idx]
		t.ref(n.lo)
		t.ref(n.hi)
	}
}

// deref drops one reference to s and, if that was the last one, recursively
// drops the reference s held on its own children: the 1->0 transition means
// s just went dead, which releases its grip on the rest of the graph in
// turn, symmetric with ref's 0->1 case.
func (t *uniquetable) deref(s Signal) {
	if s.IsConst() {
		return
	}
	idx := s.index()
	invariant(t.nodes[idx].refcou > 0, "deref of node %d with zero refcount", idx)
	t.nodes[idx].refcou--
	if t.nodes[idx].refcou == 0 {
		n := t.nodes[idx]
		t.deref(n.lo)
		t.deref(n.hi)
	}
}

// liveCount returns the number of non-terminal nodes currently held live by
// at least one reference.
func (t *uniquetable) liveCount() int {
	count := 0
	for _, n := range t.nodes[1:] {
		if n.refcou > 0 {
			count++
		}
	}
	return count
}

// size returns the number of allocated node slots, including the reserved
// terminal slot and every node ever produced: we never compact or reclaim
// positions, since dropping node-table garbage collection is an explicit
// simplification (see DESIGN.md).
func (t *uniquetable) size() int {
	return len(t.nodes)
}
