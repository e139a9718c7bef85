// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package scenarios runs a fixed battery of conformance scenarios against
// the robdd package and reports a pass/fail verdict for each one. It is the
// engine behind the robddtest command; it has no dependency on the testing
// package so it can also run outside of `go test`.
package scenarios

import (
	"fmt"

	"github.com/bddkit/robdd"
)

// Result is the outcome of running a single scenario.
type Result struct {
	Name string
	Err  error
}

// Passed reports whether the scenario produced no error.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Scenario is a named, self-contained conformance check.
type Scenario struct {
	Name string
	Run  func() error
}

// All returns the full battery of scenarios, in a fixed order.
func All() []Scenario {
	return []Scenario{
		{"cancellation-via-cache", cancellationViaCache},
		{"complement-edge-sharing", complementEdgeSharing},
		{"constant-collapse", constantCollapse},
		{"wide-dag", wideDAG},
		{"many-variables-multiple-outputs", manyVariablesMultipleOutputs},
		{"xor-cache", xorCache},
		{"ite-canonical-cache", iteCanonicalCache},
	}
}

// RunAll executes every scenario and returns one Result per scenario, in
// the same order as All.
func RunAll() []Result {
	all := All()
	results := make([]Result, len(all))
	for i, s := range all {
		results[i] = Result{Name: s.Name, Err: s.Run()}
	}
	return results
}

func requireEqual(label string, got, want interface{}) error {
	if got != want {
		return fmt.Errorf("%s: got %v, want %v", label, got, want)
	}
	return nil
}

func requireAtMost(label string, got, max int) error {
	if got > max {
		return fmt.Errorf("%s: got %d, want at most %d", label, got, max)
	}
	return nil
}

func cancellationViaCache() error {
	b, err := robdd.New(2)
	if err != nil {
		return err
	}
	x0, err := b.Ithvar(0)
	if err != nil {
		return err
	}
	x1, err := b.Ithvar(1)
	if err != nil {
		return err
	}
	g := b.And(x0, x1)
	h := b.And(x0, x1)
	b.ResetInvokeCount()
	f := b.Xor(g, h)
	if err := requireEqual("get_tt(f)", b.GetTT(f).String(), "0000"); err != nil {
		return err
	}
	return requireAtMost("num_invoke", b.NumInvoke(), 5)
}

func complementEdgeSharing() error {
	b, err := robdd.New(2)
	if err != nil {
		return err
	}
	x0, err := b.Ithvar(0)
	if err != nil {
		return err
	}
	x1, err := b.Ithvar(1)
	if err != nil {
		return err
	}
	f := b.Ref(b.Xor(x0, x1))
	if err := requireEqual("get_tt(f)", b.GetTT(f).String(), "0110"); err != nil {
		return err
	}
	if err := requireEqual("num_nodes(f)", b.NumNodesFrom(f), 2); err != nil {
		return err
	}
	if err := requireEqual("num_nodes() while f live", b.NumNodes(), 2); err != nil {
		return err
	}
	b.Deref(f)
	return requireEqual("num_nodes() after deref", b.NumNodes(), 0)
}

func constantCollapse() error {
	b, err := robdd.New(3)
	if err != nil {
		return err
	}
	x0, err := b.Ithvar(0)
	if err != nil {
		return err
	}
	x1, err := b.Ithvar(1)
	if err != nil {
		return err
	}
	x2, err := b.Ithvar(2)
	if err != nil {
		return err
	}
	f1 := b.Ite(x2, x1, x0)
	f2 := b.Ite(x0, b.And(x2, b.Not(x1)), b.Xor(x1, x2))
	f := b.Ref(b.And(f1, f2))
	if err := requireEqual("get_tt(f)", b.GetTT(f).String(), "00000000"); err != nil {
		return err
	}
	if err := requireEqual("num_nodes(f)", b.NumNodesFrom(f), 0); err != nil {
		return err
	}
	b.Deref(f)
	return requireEqual("num_nodes() after deref", b.NumNodes(), 0)
}

func wideDAG() error {
	b, err := robdd.New(5)
	if err != nil {
		return err
	}
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
	if err := requireEqual("get_tt(f)", b.GetTT(f).String(), "01000000000000000100111100001111"); err != nil {
		return err
	}
	return requireEqual("num_nodes(f)", b.NumNodesFrom(f), 6)
}

func manyVariablesMultipleOutputs() error {
	b, err := robdd.New(10)
	if err != nil {
		return err
	}
	x0, _ := b.Ithvar(0)
	x2, _ := b.Ithvar(2)
	x4, _ := b.Ithvar(4)
	x6, _ := b.Ithvar(6)
	x9, _ := b.Ithvar(9)

	f1 := b.Ref(b.Or(x0, x9))
	f2 := b.Ref(b.Or(b.And(x4, b.Not(x6)), b.And(b.Not(x4), x6)))
	f3 := b.Ref(b.Ite(x6, b.Not(x2), b.Not(x6)))

	if err := requireEqual("num_nodes(f1)", b.NumNodesFrom(f1), 2); err != nil {
		return err
	}
	if err := requireEqual("num_nodes(f2)", b.NumNodesFrom(f2), 2); err != nil {
		return err
	}
	if err := requireEqual("num_nodes(f3)", b.NumNodesFrom(f3), 2); err != nil {
		return err
	}
	return requireEqual("num_nodes()", b.NumNodes(), 5)
}

func xorCache() error {
	b, err := robdd.New(4)
	if err != nil {
		return err
	}
	x0, _ := b.Ithvar(0)
	x1, _ := b.Ithvar(1)
	x2, _ := b.Ithvar(2)
	x3, _ := b.Ithvar(3)

	g3 := b.Xor(x0, b.Xor(x1, b.Xor(x2, x3)))
	h3 := b.Xor(b.Xor(x3, x2), b.Xor(x0, x1))

	b.ResetInvokeCount()
	diff := b.Xor(g3, h3)
	if err := requireEqual("xor(g3,h3)", diff, robdd.False); err != nil {
		return err
	}
	return requireAtMost("num_invoke", b.NumInvoke(), 20)
}

func iteCanonicalCache() error {
	b, err := robdd.New(3)
	if err != nil {
		return err
	}
	x0, _ := b.Ithvar(0)
	x1, _ := b.Ithvar(1)
	x2, _ := b.Ithvar(2)

	b.ResetInvokeCount()
	f1 := b.Ite(x1, x2, x0)
	f2 := b.Ite(b.Not(x1), x0, x2)

	if err := requireEqual("get_tt(f1)", b.GetTT(f1).String(), "11100010"); err != nil {
		return err
	}
	if err := requireEqual("get_tt(f2)", b.GetTT(f2).String(), "11100010"); err != nil {
		return err
	}
	return requireAtMost("num_invoke", b.NumInvoke(), 10)
}
