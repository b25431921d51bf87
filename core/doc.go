// Package core defines the data model shared by every partitioning
// component: Topology (graph or hypergraph), Weights (vertex/edge/hyperedge,
// vector-valued across balancing criteria), Partition, Targets, the
// ModelSet that bundles them, and the multilevel Stack of Levels built by
// repeated Coarsen calls.
//
// Topology and Weights are immutable after construction except through
// Coarsen, which produces a new ModelSet rather than mutating its input.
// Partition is the one member refiners mutate in place.
package core
