// Package multilevel implements matching-based coarsening, the recursive
// coarsen-to-a-stop-point driver, and prolongation.
package multilevel
