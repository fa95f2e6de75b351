package attribute

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/geode-kernel/geode/pkg/basic"
)

// Manager owns a number of elements N and a name->attribute registry,
// fanning resize/delete/permute/copy/clear out to every attribute so the
// invariant "every non-constant attribute has exactly N logical elements"
// (§3 invariant 1) holds after every operation.
//
// The registry keeps explicit insertion order (basic.OrderedMap) rather than
// relying on Go map iteration order, matching original_source's use of an
// ordered std::map for deterministic attribute-name enumeration during
// serialization (see SPEC_FULL.md §4).
type Manager struct {
	n          int
	attributes *basic.OrderedMap[string, Attribute]
}

// NewManager creates an empty manager with zero elements.
func NewManager() *Manager {
	return &Manager{attributes: basic.NewOrderedMap[string, Attribute]()}
}

// NbElements returns the current element count N.
func (m *Manager) NbElements() int { return m.n }

// NbAttributes returns how many attributes are registered.
func (m *Manager) NbAttributes() int { return m.attributes.Len() }

// AttributeNames returns the registered attribute names in insertion
// order.
func (m *Manager) AttributeNames() []string { return m.attributes.Keys() }

// FindOrCreateDense returns the dense attribute registered under name,
// creating it (sized to NbElements(), default-filled) if absent. It fails
// with ErrTypeMismatch if name already holds an attribute of a different
// Go type, or ErrStorageConflict if it holds a different storage flavor.
func FindOrCreateDense[T any](m *Manager, name string, def T, props Properties) (*DenseAttribute[T], error) {
	if existing, ok := m.attributes.Get(name); ok {
		typed, kindOK, typeOK := asDense[T](existing)
		if !typeOK {
			return nil, errors.Wrapf(ErrTypeMismatch, "attribute %q", name)
		}
		if !kindOK {
			return nil, errors.Wrapf(ErrStorageConflict, "attribute %q", name)
		}
		return typed, nil
	}
	attr := NewDense[T](m.n, def, props)
	m.attributes.Set(name, attr)
	return attr, nil
}

// FindOrCreateSparse is FindOrCreateDense for sparse storage.
func FindOrCreateSparse[T any](m *Manager, name string, def T, props Properties) (*SparseAttribute[T], error) {
	if existing, ok := m.attributes.Get(name); ok {
		typed, kindOK, typeOK := asSparse[T](existing)
		if !typeOK {
			return nil, errors.Wrapf(ErrTypeMismatch, "attribute %q", name)
		}
		if !kindOK {
			return nil, errors.Wrapf(ErrStorageConflict, "attribute %q", name)
		}
		return typed, nil
	}
	attr := NewSparse[T](m.n, def, props)
	m.attributes.Set(name, attr)
	return attr, nil
}

// FindOrCreateConstant is FindOrCreateDense for constant storage.
func FindOrCreateConstant[T any](m *Manager, name string, def T, props Properties) (*ConstantAttribute[T], error) {
	if existing, ok := m.attributes.Get(name); ok {
		typed, kindOK, typeOK := asConstant[T](existing)
		if !typeOK {
			return nil, errors.Wrapf(ErrTypeMismatch, "attribute %q", name)
		}
		if !kindOK {
			return nil, errors.Wrapf(ErrStorageConflict, "attribute %q", name)
		}
		return typed, nil
	}
	attr := NewConstant[T](m.n, def, props)
	m.attributes.Set(name, attr)
	return attr, nil
}

// Find returns the dense attribute registered under name, or
// ErrMissing/ErrTypeMismatch.
func Find[T any](m *Manager, name string) (*DenseAttribute[T], error) {
	existing, ok := m.attributes.Get(name)
	if !ok {
		return nil, errors.Wrapf(ErrMissing, "attribute %q", name)
	}
	typed, kindOK, typeOK := asDense[T](existing)
	if !typeOK {
		return nil, errors.Wrapf(ErrTypeMismatch, "attribute %q", name)
	}
	if !kindOK {
		return nil, errors.Wrapf(ErrStorageConflict, "attribute %q is not dense", name)
	}
	return typed, nil
}

// FindGeneric returns the attribute registered under name regardless of
// storage flavor, for callers (serialization, generic export) that only
// need the Attribute capability set.
func (m *Manager) FindGeneric(name string) (Attribute, bool) {
	return m.attributes.Get(name)
}

// DeleteAttribute removes the named attribute. Idempotent: deleting an
// absent name is a no-op.
func (m *Manager) DeleteAttribute(name string) {
	m.attributes.Delete(name)
}

// Resize reallocates every non-constant attribute to n elements,
// default-filling new entries, and updates N.
func (m *Manager) Resize(n int) {
	m.attributes.Range(func(_ string, a Attribute) bool {
		a.resize(n)
		return true
	})
	m.n = n
}

// DeleteElements removes the elements flagged in toDelete (len must equal
// N) from every attribute, compacting the survivors in their relative
// order. Returns a map from old index to new index, or basic.NoID for
// deleted elements.
func (m *Manager) DeleteElements(toDelete []bool) ([]basic.Index, error) {
	if len(toDelete) != m.n {
		return nil, errors.Wrapf(ErrSizeMismatch, "delete mask length %d != %d elements", len(toDelete), m.n)
	}
	keep := make([]bool, m.n)
	oldToNew := make([]basic.Index, m.n)
	newLen := 0
	for i := 0; i < m.n; i++ {
		if toDelete[i] {
			oldToNew[i] = basic.NoID
			keep[i] = false
			continue
		}
		keep[i] = true
		oldToNew[i] = basic.Index(newLen)
		newLen++
	}
	m.attributes.Range(func(_ string, a Attribute) bool {
		a.deleteElements(keep, newLen)
		return true
	})
	m.n = newLen
	return oldToNew, nil
}

// PermuteElements reorders every attribute according to perm, where
// perm[old] is the destination index of the element currently at old.
// len(perm) must equal N.
func (m *Manager) PermuteElements(perm []basic.Index) error {
	if len(perm) != m.n {
		return errors.Wrapf(ErrSizeMismatch, "permutation length %d != %d elements", len(perm), m.n)
	}
	dest := lo.Map(perm, func(d basic.Index, _ int) int { return int(d) })
	m.attributes.Range(func(_ string, a Attribute) bool {
		a.permuteElements(dest, m.n)
		return true
	})
	return nil
}

// Clear drops every attribute and resets N to 0.
func (m *Manager) Clear() {
	m.attributes.Clear()
	m.n = 0
}

// Copy replaces m's contents with a value-copy of src: N is preserved from
// src, and every attribute is deep-cloned.
func (m *Manager) Copy(src *Manager) {
	m.attributes.Clear()
	src.attributes.Range(func(name string, a Attribute) bool {
		m.attributes.Set(name, a.clone())
		return true
	})
	m.n = src.n
}

func asDense[T any](a Attribute) (typed *DenseAttribute[T], kindOK bool, typeOK bool) {
	d, isDense := a.(*DenseAttribute[T])
	if isDense {
		return d, true, true
	}
	// Right Go type but wrong flavor? We can't cheaply tell without the
	// concrete type, so fall back to comparing TypeName: if it matches the
	// requested T's name but isn't a *DenseAttribute[T], it's a storage
	// conflict rather than a type mismatch.
	if a.TypeName() == typeName[T]() {
		return nil, false, true
	}
	return nil, false, false
}

func asSparse[T any](a Attribute) (typed *SparseAttribute[T], kindOK bool, typeOK bool) {
	s, isSparse := a.(*SparseAttribute[T])
	if isSparse {
		return s, true, true
	}
	if a.TypeName() == typeName[T]() {
		return nil, false, true
	}
	return nil, false, false
}

func asConstant[T any](a Attribute) (typed *ConstantAttribute[T], kindOK bool, typeOK bool) {
	c, isConstant := a.(*ConstantAttribute[T])
	if isConstant {
		return c, true, true
	}
	if a.TypeName() == typeName[T]() {
		return nil, false, true
	}
	return nil, false, false
}
