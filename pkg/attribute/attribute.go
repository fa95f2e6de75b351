// Package attribute implements the type-erased, per-element attribute
// store described in §4.B: an AttributeManager owns a number of elements N
// and a name->attribute registry, fanning out resize/delete/permute calls
// to every attribute it owns so they stay in lockstep with N.
//
// The teacher's NodeData interface (pkg/graph/node.go: "marker method
// restricting implementations to this package") is the model for
// Attribute here: a small capability interface plus a closed set of
// concrete storage flavours (Constant, Dense, Sparse), generalized with
// Go generics instead of Go's lack of tagged unions.
package attribute

import "github.com/pkg/errors"

// Errors mirror the §7 taxonomy entries this package can raise.
var (
	ErrTypeMismatch    = errors.New("attribute: type mismatch for existing name")
	ErrStorageConflict = errors.New("attribute: storage flavor conflict for existing name")
	ErrMissing         = errors.New("attribute: not found")
	ErrSizeMismatch    = errors.New("attribute: size mismatch")
)

// Properties tags an attribute with the two boolean traits the spec
// requires every attribute to carry.
type Properties struct {
	Assignable   bool
	Interpolable bool
}

// StorageKind tags which of the three storage flavours an attribute uses.
type StorageKind int

const (
	// Constant attributes share one value across all elements; resize and
	// delete are no-ops.
	Constant StorageKind = iota
	// Dense attributes hold exactly N values, default-filled on resize.
	Dense
	// Sparse attributes hold a hash map from element index to value; reads
	// of unset indices return the default.
	Sparse
)

// GenericView is implemented by attributes whose element type can be
// viewed as one or more floats — the "numeric genericability" trait used
// by generic consumers (export, generic readers). nb_items() > 1 for
// vector-valued attributes.
type GenericView interface {
	NbItems() int
	GenericValue(elem int, item int) (float64, bool)
}

// Attribute is the capability set every storage flavour implements. It is
// intentionally index-based (not iterator-based) so hot mesh loops can
// call through the manager without an allocation.
type Attribute interface {
	Len() int
	Kind() StorageKind
	TypeName() string
	Properties() Properties
	resize(n int)
	deleteElements(keep []bool, newLen int)
	permuteElements(dest []int, newLen int)
	clone() Attribute
}
