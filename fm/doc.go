// Package fm implements Fiduccia-Mattheyses cut refinement: construct a
// Refiner over a model set and an imbalance constraint, then call Run to
// repeat inner passes (bounded moves with lock discipline and
// rollback-to-best) until the outer stop predicate fires.
package fm
