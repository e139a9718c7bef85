// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd_test

import (
	"testing"

	"github.com/bddkit/robdd"
	"github.com/stretchr/testify/require"
)

// Scenario 1: cancellation via cache. Building AND(x0,x1) twice yields the
// same signal, so XORing the two results must collapse to the constant
// false, settled as a terminal case within the invocation budget.
func TestScenarioCancellationViaCache(t *testing.T) {
	b, err := robdd.New(2)
	require.NoError(t, err)
	x0, err := b.Ithvar(0)
	require.NoError(t, err)
	x1, err := b.Ithvar(1)
	require.NoError(t, err)

	g := b.And(x0, x1)
	h := b.And(x0, x1)
	b.ResetInvokeCount()
	f := b.Xor(g, h)

	require.Equal(t, "0000", b.GetTT(f).String())
	require.LessOrEqual(t, b.NumInvoke(), 5)
}

// Scenario 2: complement-edge sharing. x0 XOR x1 shares a single node
// between its two polarities, and releasing every outstanding handle must
// bring the live node count back to zero.
func TestScenarioComplementEdgeSharing(t *testing.T) {
	b, err := robdd.New(2)
	require.NoError(t, err)
	x0, err := b.Ithvar(0)
	require.NoError(t, err)
	x1, err := b.Ithvar(1)
	require.NoError(t, err)

	f := b.Ref(b.Xor(x0, x1))

	require.Equal(t, "0110", b.GetTT(f).String())
	require.Equal(t, 2, b.NumNodesFrom(f))
	require.Equal(t, 2, b.NumNodes())

	b.Deref(f)
	require.Equal(t, 0, b.NumNodes())
}

// Scenario 3: constant collapse. Two differently-built expressions over the
// same three variables happen to be mutually exclusive, so their
// conjunction collapses all the way down to the constant false, which owns
// no nodes at all.
func TestScenarioConstantCollapse(t *testing.T) {
	b, err := robdd.New(3)
	require.NoError(t, err)
	x0, err := b.Ithvar(0)
	require.NoError(t, err)
	x1, err := b.Ithvar(1)
	require.NoError(t, err)
	x2, err := b.Ithvar(2)
	require.NoError(t, err)

	f1 := b.Ite(x2, x1, x0)
	f2 := b.Ite(x0, b.And(x2, b.Not(x1)), b.Xor(x1, x2))
	f := b.Ref(b.And(f1, f2))

	require.Equal(t, "00000000", b.GetTT(f).String())
	require.Equal(t, 0, b.NumNodesFrom(f))

	b.Deref(f)
	require.Equal(t, 0, b.NumNodes())
}

// Scenario 4: a wider DAG with five variables and a six-node reachable set.
func TestScenarioWideDAG(t *testing.T) {
	b, err := robdd.New(5)
	require.NoError(t, err)
	x0, _ := b.Ithvar(0)
	x1, _ := b.Ithvar(1)
	x2, _ := b.Ithvar(2)
	x3, _ := b.Ithvar(3)
	x4, _ := b.Ithvar(4)

	f := b.Ref(b.Ite(
		b.And(x2, x3),
		b.And(x1, b.Not(x0)),
		b.And(b.Not(x2), b.Not(x4)),
	))

	require.Equal(t, "01000000000000000100111100001111", b.GetTT(f).String())
	require.Equal(t, 6, b.NumNodesFrom(f))
}

// Scenario 5: three independent outputs sharing structure, for a total of
// five live nodes across the manager.
func TestScenarioManyVariablesMultipleOutputs(t *testing.T) {
	b, err := robdd.New(10)
	require.NoError(t, err)
	x0, _ := b.Ithvar(0)
	x2, _ := b.Ithvar(2)
	x4, _ := b.Ithvar(4)
	x6, _ := b.Ithvar(6)
	x9, _ := b.Ithvar(9)

	f1 := b.Ref(b.Or(x0, x9))
	f2 := b.Ref(b.Or(b.And(x4, b.Not(x6)), b.And(b.Not(x4), x6)))
	f3 := b.Ref(b.Ite(x6, b.Not(x2), b.Not(x6)))

	require.Equal(t, 2, b.NumNodesFrom(f1))
	require.Equal(t, 2, b.NumNodesFrom(f2))
	require.Equal(t, 2, b.NumNodesFrom(f3))
	require.Equal(t, 5, b.NumNodes())
}

// Scenario 6: a four-variable XOR chain built two different, cache-
// exercising ways must agree on the whole tree and stay within the
// invocation budget the cache's commutativity earns back.
func TestScenarioXorCache(t *testing.T) {
	b, err := robdd.New(4)
	require.NoError(t, err)
	x0, _ := b.Ithvar(0)
	x1, _ := b.Ithvar(1)
	x2, _ := b.Ithvar(2)
	x3, _ := b.Ithvar(3)

	g3 := b.Xor(x0, b.Xor(x1, b.Xor(x2, x3)))
	h3 := b.Xor(b.Xor(x3, x2), b.Xor(x0, x1))

	b.ResetInvokeCount()
	diff := b.Xor(g3, h3)

	require.Equal(t, robdd.False, diff)
	require.LessOrEqual(t, b.NumInvoke(), 20)
}

// Scenario 7: ITE's (f,g,h) == (!f,h,g) canonicalization lets two
// differently-polarized constructions of the same function share a cache
// entry.
func TestScenarioIteCanonicalCache(t *testing.T) {
	b, err := robdd.New(3)
	require.NoError(t, err)
	x0, _ := b.Ithvar(0)
	x1, _ := b.Ithvar(1)
	x2, _ := b.Ithvar(2)

	b.ResetInvokeCount()
	f1 := b.Ite(x1, x2, x0)
	f2 := b.Ite(b.Not(x1), x0, x2)

	require.Equal(t, "11100010", b.GetTT(f1).String())
	require.Equal(t, "11100010", b.GetTT(f2).String())
	require.LessOrEqual(t, b.NumInvoke(), 10)
}
