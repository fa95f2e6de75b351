// Package mesh implements the vertex/point/edge/polygon/polyhedron
// container hierarchy of §4.E: every mesh type layers on top of a
// VertexSet and an attribute.Manager, and exposes the same handful of
// builder operations (create/set/delete/permute) the spec calls out as
// the closed editing surface for this layer.
package mesh

import "github.com/pkg/errors"

// Errors mirror the §7 taxonomy entries this package can raise.
var (
	ErrOutOfRange       = errors.New("mesh: index out of range")
	ErrInvalidReference = errors.New("mesh: invalid vertex or element reference")
	ErrSizeMismatch     = errors.New("mesh: size mismatch")
	ErrNonManifold      = errors.New("mesh: non-manifold topology")
	ErrIncompatibleMesh = errors.New("mesh: incompatible mesh type")
)
