// Package vnrefine implements the two vector-of-numbers balance refiners:
// First, a cyclic first-improvement scan, and Best, driven by a
// vngain.Table.
package vnrefine
