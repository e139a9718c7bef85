// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd_test

import (
	"math/rand"
	"testing"

	"github.com/bddkit/robdd"
	"github.com/stretchr/testify/require"
)

// randomSignal builds a moderately deep random Boolean expression over the
// manager's variables, exercising And/Or/Xor/Ite/Not the same way a fuzzing
// client would.
func randomSignal(t *testing.T, b *robdd.BDD, r *rand.Rand, depth int) robdd.Signal {
	t.Helper()
	if depth == 0 {
		v := r.Intn(b.Varnum())
		s, err := b.Literal(v, r.Intn(2) == 0)
		require.NoError(t, err)
		return s
	}
	left := randomSignal(t, b, r, depth-1)
	right := randomSignal(t, b, r, depth-1)
	switch r.Intn(5) {
	case 0:
		return b.And(left, right)
	case 1:
		return b.Or(left, right)
	case 2:
		return b.Xor(left, right)
	case 3:
		return b.Not(left)
	default:
		third := randomSignal(t, b, r, depth-1)
		return b.Ite(left, right, third)
	}
}

// TestPropertyCanonicity covers P1: no two distinct live nodes may share a
// (level, lo, hi) triple, and every then-edge is non-complemented. We can
// only observe this indirectly, through signal equality, since the unique table itself
// is private: two structurally identical sub-functions built independently
// must still collapse onto the same signal.
func TestPropertyCanonicity(t *testing.T) {
	b, err := robdd.New(4)
	require.NoError(t, err)
	x0, _ := b.Ithvar(0)
	x1, _ := b.Ithvar(1)

	a := b.And(x0, x1)
	c := b.And(x1, x0)
	require.Equal(t, a, c, "canonical form must be independent of construction order")
}

// TestPropertyOrder covers P2 indirectly: Print must never report a child
// whose level does not strictly exceed its parent's, which would corrupt
// the textual dump into an inconsistent tree. We instead check the
// observable consequence: get_tt must treat variable indices in the
// declared order, i.e. Ithvar(i) depends only on bit i of the assignment.
func TestPropertyOrder(t *testing.T) {
	b, err := robdd.New(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		x, err := b.Ithvar(i)
		require.NoError(t, err)
		tt := b.GetTT(x)
		for pos := 0; pos < 8; pos++ {
			want := pos&(1<<uint(i)) != 0
			require.Equal(t, want, tt.GetBit(pos))
		}
	}
}

// TestPropertySemanticEquivalence covers P3: every operator must agree with
// the independent truth-table oracle.
func TestPropertySemanticEquivalence(t *testing.T) {
	b, err := robdd.New(4)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 30; i++ {
		f := randomSignal(t, b, r, 3)
		g := randomSignal(t, b, r, 3)

		require.True(t, b.GetTT(b.Not(f)).Equal(b.GetTT(f).Not()))
		require.True(t, b.GetTT(b.And(f, g)).Equal(b.GetTT(f).And(b.GetTT(g))))
		require.True(t, b.GetTT(b.Or(f, g)).Equal(b.GetTT(f).Or(b.GetTT(g))))
		require.True(t, b.GetTT(b.Xor(f, g)).Equal(b.GetTT(f).Xor(b.GetTT(g))))
	}
}

// TestPropertyComplementCollapse covers P4: double negation is the identity
// at the signal level, not merely the semantic one.
func TestPropertyComplementCollapse(t *testing.T) {
	b, err := robdd.New(4)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		f := randomSignal(t, b, r, 3)
		require.Equal(t, f, b.Not(b.Not(f)))
	}
}

// TestPropertyIdempotence covers P5.
func TestPropertyIdempotence(t *testing.T) {
	b, err := robdd.New(4)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		f := randomSignal(t, b, r, 3)
		require.Equal(t, f, b.And(f, f))
		require.Equal(t, f, b.Or(f, f))
		require.Equal(t, robdd.False, b.Xor(f, f))
	}
}

// TestPropertyIdentities covers P6.
func TestPropertyIdentities(t *testing.T) {
	b, err := robdd.New(4)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 20; i++ {
		f := randomSignal(t, b, r, 3)
		require.Equal(t, f, b.And(f, robdd.True))
		require.Equal(t, f, b.Or(f, robdd.False))
		require.Equal(t, b.Not(f), b.Xor(f, robdd.True))
	}
}

// TestPropertyCommutationViaCache covers P7: computing And(f,g) then
// And(g,f) costs exactly one additional entry each, with the second call
// resolved entirely by the canonicalized cache key.
func TestPropertyCommutationViaCache(t *testing.T) {
	b, err := robdd.New(4)
	require.NoError(t, err)
	x0, _ := b.Ithvar(0)
	x1, _ := b.Ithvar(1)
	f := b.And(x0, b.Not(x1))
	g := b.Or(x1, x0)

	b.ResetInvokeCount()
	fg := b.And(f, g)
	afterFirst := b.NumInvoke()
	require.Equal(t, 1, afterFirst)

	gf := b.And(g, f)
	afterSecond := b.NumInvoke()
	require.Equal(t, afterFirst+1, afterSecond)
	require.Equal(t, fg, gf)
}

// TestPropertyIteIdentity covers P8.
func TestPropertyIteIdentity(t *testing.T) {
	b, err := robdd.New(4)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 20; i++ {
		f := randomSignal(t, b, r, 2)
		g := randomSignal(t, b, r, 2)
		h := randomSignal(t, b, r, 2)
		require.Equal(t, b.Ite(f, g, h), b.Ite(b.Not(f), h, g))
	}
}

// TestPropertyReferenceDiscipline covers P9: pairing every Ref with a Deref
// must return the live node count to zero, regardless of how tangled the
// intermediate expression was.
func TestPropertyReferenceDiscipline(t *testing.T) {
	b, err := robdd.New(5)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(6))
	var handles []robdd.Signal
	for i := 0; i < 10; i++ {
		handles = append(handles, b.Ref(randomSignal(t, b, r, 3)))
	}
	for _, h := range handles {
		b.Deref(h)
	}
	require.Equal(t, 0, b.NumNodes())
}

// TestPropertyReachabilityBoundedByLive covers P10.
func TestPropertyReachabilityBoundedByLive(t *testing.T) {
	b, err := robdd.New(5)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(7))
	f := b.Ref(randomSignal(t, b, r, 4))
	require.LessOrEqual(t, b.NumNodesFrom(f), b.NumNodes())
	b.Deref(f)
}
