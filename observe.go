// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"sort"
)

// reachable returns the indices, sorted, of every non-constant node
// reachable from s.
func (b *BDD) reachable(s Signal) []int {
	seen := map[int]bool{}
	var walk func(Signal)
	walk = func(s Signal) {
		if s.IsConst() || seen[s.index()] {
			return
		}
		seen[s.index()] = true
		n := b.table.at(s)
		walk(n.lo)
		walk(n.hi)
	}
	walk(s)
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Print returns a one-line-per-node textual description of the BDD rooted
// at s: each line gives a node's index, its level, and the signal of its
// then and else branches, with a leading '!' marking a complemented edge.
func (b *BDD) Print(s Signal) string {
	if s.IsZero() {
		return "False"
	}
	if s.IsOne() {
		return "True"
	}
	res := fmt.Sprintf("node: %s\n", s)
	for _, id := range b.reachable(s) {
		n := b.table.nodes[id]
		res += fmt.Sprintf("%d[%d] ? %s : %s\n", id, n.level, n.hi, n.lo)
	}
	return res
}

// PrintDot writes a GraphViz DOT rendering of the BDD rooted at s to w.
// Else edges are drawn dashed and then edges solid; when s itself is
// complemented, a dashed edge from an unlabelled root point marks it. The
// complement bit of an else edge is not drawn. Terminal nodes are rendered under the
// "F"/"T" ids rather than "0"/"1", since node indices are also small
// integers and table index 1 would otherwise collide with the True
// terminal's box.
func (b *BDD) PrintDot(w io.Writer, s Signal) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, `F [shape=box, label="0", style=filled, height=0.3, width=0.3];`)
	fmt.Fprintln(w, `T [shape=box, label="1", style=filled, height=0.3, width=0.3];`)
	for _, id := range b.reachable(s) {
		n := b.table.nodes[id]
		fmt.Fprintf(w, "%s [label=\"%d [%d]\"];\n", nodeID(id), id, n.level)
		fmt.Fprintf(w, "%s -> %s [style=dashed];\n", nodeID(id), edgeTarget(n.lo))
		fmt.Fprintf(w, "%s -> %s [style=solid];\n", nodeID(id), edgeTarget(n.hi))
	}
	if s.Complement() && !s.IsConst() {
		fmt.Fprintf(w, "root [shape=none, label=\"\"];\nroot -> %s [style=dashed];\n", nodeID(s.index()))
	}
	fmt.Fprintln(w, "}")
}

func nodeID(index int) string {
	return fmt.Sprintf("n%d", index)
}

func edgeTarget(s Signal) string {
	if s.IsConst() {
		if s.IsOne() {
			return "T"
		}
		return "F"
	}
	return nodeID(s.index())
}

// FPrintDot writes the DOT rendering of s to filename, or to standard output
// when filename is "-".
func (b *BDD) FPrintDot(filename string, s Signal) error {
	if filename == "-" {
		w := bufio.NewWriter(os.Stdout)
		b.PrintDot(w, s)
		return w.Flush()
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	b.PrintDot(w, s)
	return w.Flush()
}

// Stats returns a short textual summary of the node table and operator
// caches, similar to what BuDDy-derived libraries print with bdd_printstat.
func (b *BDD) Stats() string {
	res := fmt.Sprintf("Varnum:   %d\n", b.varnum)
	res += fmt.Sprintf("Nodes:    %d\n", b.table.size())
	res += fmt.Sprintf("Invokes:  %d\n", b.invokes)
	res += fmt.Sprintf("Apply:    %d entries\n", len(b.cache.apply))
	res += fmt.Sprintf("Ite:      %d entries\n", len(b.cache.ite))
	res += fmt.Sprintf("Exist:    %d entries\n", len(b.cache.exist))
	res += fmt.Sprintf("AppEx:    %d entries\n", len(b.cache.appex))
	res += fmt.Sprintf("Replace:  %d entries\n", len(b.cache.replace))
	return res
}

// Satcount returns the number of satisfying variable assignments for the
// function denoted by s, over all Varnum variables, using arbitrary
// precision arithmetic so the result never overflows.
func (b *BDD) Satcount(s Signal) *big.Int {
	if s.IsZero() {
		return big.NewInt(0)
	}
	memo := map[Signal]*big.Int{}
	count := b.satcount(s, memo)
	scale := new(big.Int).Lsh(big.NewInt(1), uint(b.topLevel(s)))
	return new(big.Int).Mul(count, scale)
}

// satcount returns the number of satisfying assignments of the variables
// from level(s) (inclusive) to Varnum (exclusive), i.e. it already accounts
// for variables skipped below s but not for any skipped above it.
func (b *BDD) satcount(s Signal, memo map[Signal]*big.Int) *big.Int {
	if s.IsOne() {
		return big.NewInt(1)
	}
	if s.IsZero() {
		return big.NewInt(0)
	}
	if res, ok := memo[s]; ok {
		return res
	}
	level := b.table.level(s)
	hi, lo := b.table.cofactors(s)
	chi := new(big.Int).Lsh(b.satcount(hi, memo), uint(b.topLevel(hi)-level-1))
	clo := new(big.Int).Lsh(b.satcount(lo, memo), uint(b.topLevel(lo)-level-1))
	res := new(big.Int).Add(chi, clo)
	memo[s] = res
	return res
}

// Allsat iterates through every satisfying variable assignment of s, calling
// f with a slice of length Varnum giving, for each variable, 1 if it must be
// true, 0 if it must be false, and -1 if it is a don't care in that
// assignment. Iteration stops as soon as f returns an error, which Allsat
// then returns to its own caller.
func (b *BDD) Allsat(s Signal, f func([]int) error) error {
	assign := make([]int, b.varnum)
	for i := range assign {
		assign[i] = -1
	}
	return b.allsat(s, assign, f)
}

func (b *BDD) allsat(s Signal, assign []int, f func([]int) error) error {
	if s.IsZero() {
		return nil
	}
	if s.IsOne() {
		return f(append([]int(nil), assign...))
	}
	level := b.table.level(s)
	hi, lo := b.table.cofactors(s)
	assign[level] = 1
	if err := b.allsat(hi, assign, f); err != nil {
		return err
	}
	assign[level] = 0
	if err := b.allsat(lo, assign, f); err != nil {
		return err
	}
	assign[level] = -1
	return nil
}
