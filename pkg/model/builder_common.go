package model

import "github.com/pkg/errors"

// checkBoundaryDimension enforces spec §3's boundary/incidence dimension
// ladder: a boundary component's dimension is exactly one less than the
// dimension of the component it bounds (Corner->Line, Line->Surface,
// Surface->Block).
func checkBoundaryDimension(owner, boundary ComponentType) error {
	od, bd := owner.Dimension(), boundary.Dimension()
	if od < 0 || bd < 0 || bd != od-1 {
		return errors.Wrapf(ErrDimensionMismatch, "%s cannot be a boundary of %s", boundary, owner)
	}
	return nil
}

// checkEmbeddingDimension enforces spec §3's internal/embedding rule: the
// embedded component's dimension must be strictly less than the
// embedder's.
func checkEmbeddingDimension(internal, embedder ComponentType) error {
	id, ed := internal.Dimension(), embedder.Dimension()
	if id < 0 || ed < 0 || id >= ed {
		return errors.Wrapf(ErrDimensionMismatch, "%s cannot be embedded in %s", internal, embedder)
	}
	return nil
}
