// Package basic provides the stable identifiers, index types, and
// growable-archive versioning used throughout the geode kernel.
package basic

import (
	"github.com/google/uuid"
)

// Index is the 32-bit element index used everywhere a vertex, edge,
// polygon or polyhedron is referenced by position.
type Index = uint32

// NoID is the sentinel Index value meaning "absent".
const NoID Index = 0xFFFFFFFF

// LocalIndex orders sub-elements within an element (which vertex of a
// polygon, which facet of a polyhedron). 8 bits is enough for any cell
// kind geode supports.
type LocalIndex = uint8

// NoLocalID is the sentinel LocalIndex value meaning "absent".
const NoLocalID LocalIndex = 0xFF

// UUID is a 128-bit randomly generated component identity. Equality and
// hashing are bytewise; UUID is comparable and safe as a map key.
type UUID struct {
	hi, lo uint64
}

// NewUUID draws 128 bits of OS entropy via google/uuid and packs them into
// the two-halves representation this package hashes and compares on.
func NewUUID() UUID {
	id := uuid.New()
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(id[i])
	}
	for i := 8; i < 16; i++ {
		lo = lo<<8 | uint64(id[i])
	}
	return UUID{hi: hi, lo: lo}
}

// Nil is the zero-value UUID, used as an explicit "no component" marker.
var Nil = UUID{}

// IsNil reports whether u is the zero UUID.
func (u UUID) IsNil() bool { return u.hi == 0 && u.lo == 0 }

// String renders the UUID in canonical 8-4-4-4-12 hex form.
func (u UUID) String() string {
	var b [16]byte
	for i := 0; i < 8; i++ {
		b[7-i] = byte(u.hi >> (8 * i))
	}
	for i := 0; i < 8; i++ {
		b[15-i] = byte(u.lo >> (8 * i))
	}
	id := uuid.UUID(b)
	return id.String()
}

// Bytes returns the 16 raw bytes of the identifier, declaration order
// matching the §6 persistence format ("uuid: 16 raw bytes").
func (u UUID) Bytes() [16]byte {
	var b [16]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(u.hi >> (8 * (7 - i)))
	}
	for i := 0; i < 8; i++ {
		b[8+i] = byte(u.lo >> (8 * (7 - i)))
	}
	return b
}

// UUIDFromBytes reconstructs a UUID from its 16-byte wire form.
func UUIDFromBytes(b [16]byte) UUID {
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(b[i])
	}
	for i := 8; i < 16; i++ {
		lo = lo<<8 | uint64(b[i])
	}
	return UUID{hi: hi, lo: lo}
}

// Hash combines the two 64-bit halves into a single value suitable for use
// in custom hash tables; Go maps already hash UUID natively since it is a
// comparable struct, but some callers (e.g. spatial index bucketing) want
// an explicit integer hash.
func (u UUID) Hash() uint64 {
	return u.hi ^ (u.lo*0x9E3779B97F4A7C15 + 0x9E3779B97F4A7C15 + (u.hi << 6) + (u.hi >> 2))
}
