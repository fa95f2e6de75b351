// Package geode is a geometric-model and mesh kernel: it stores, indexes,
// queries and edits discrete representations of curves, surfaces and
// solids, and assembles them into a boundary representation (BRep) or its
// 2D analogue (Section).
//
// The root package only carries library-wide configuration constants.
// Functionality is organized into sub-packages:
//
//   - pkg/basic: identifiers, ordered maps, archive versioning and the
//     growable-record msgp framing every serializable type is written through
//   - pkg/attribute: type-erased per-element attribute storage
//   - pkg/geometry: points, vectors, primitives, distance/intersection/mensuration
//   - pkg/spatial: AABB tree and nearest-neighbour search
//   - pkg/mesh: vertex sets, edged curves, surface and solid meshes
//   - pkg/mesh/triangulated, pkg/mesh/tetra, pkg/mesh/grid: specializations
//   - pkg/meshhelpers: conversion, merging, splitting, EDT, interpolation
//   - pkg/model: BRep/Section topology, relationships, vertex identifier
//   - pkg/model/helpers: cross-layer queries over a model
package geode

// GlobalEpsilon is the library-wide absolute tolerance used for geometric
// equality tests and degeneracy detection. All inexact comparisons in
// geode (point colocation, segment-length checks, matrix singularity,
// intersection sanity checks) are expressed in terms of this single
// constant, per the spec's explicit decision to treat numerical robustness
// predicates beyond IEEE-754 double arithmetic as an external dependency.
const GlobalEpsilon = 1e-8
