// Package sorts provides the sequential and parallel integer sorts that
// go-sortbench measures.
//
// # Algorithms
//
// Three elementary O(n²) comparison sorts, each in two modes:
//   - Bubble: adjacent-swap scan; in parallel mode, odd-even transposition sort
//   - Selection: suffix minimum scan; in parallel mode, the scan is a reduction
//   - Insertion: prefix shifting; parallel mode runs the sequential algorithm
//
// # Odd-even transposition
//
// Round i compares the pairs (j, j+1) with j ≡ i (mod 2). No two pairs of a
// round share an index, so a round's pairs run on different workers without
// locking. Rounds are separated by the barrier at the end of each parallel
// region, and n rounds always suffice for n values.
//
// # Parallel selection
//
// The outer loop stays sequential. For each position i, every worker scans its
// own chunk of the suffix into a local (value, index) candidate and the
// candidates are combined into the global minimum, lower index winning ties so
// the result matches Selection exactly. Workers never compare against a shared
// running minimum; that form races.
//
// # Insertion
//
// Step i shifts values through the prefix settled by step i-1, so steps cannot
// overlap. Running them concurrently corrupts the order. The parallel entry
// point exists so the benchmark grid is complete, and sorts sequentially.
//
// # Example Usage
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	par := sorts.NewParallel(pool)
//	for _, v := range sorts.Variants() {
//	    work := slices.Clone(data)
//	    par.Sorter(v).Sort(work)
//	}
package sorts
