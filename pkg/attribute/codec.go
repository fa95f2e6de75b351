package attribute

import (
	"github.com/tinylib/msgp/msgp"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
)

// valueAccessor lets Manager's serializer read and write a single
// element's value through an any, bypassing the Go type parameter that
// Attribute erases. DenseAttribute and SparseAttribute both implement it.
type valueAccessor interface {
	valueAt(i int) any
	setValueAt(i int, v any)
}

// sparseAccessor additionally exposes which indices actually carry an
// explicit entry, so a sparse attribute serializes only its set values
// rather than N default-filled ones.
type sparseAccessor interface {
	valueAccessor
	indices() []int
}

// constantAccessor is the constant-storage analogue of valueAccessor.
type constantAccessor interface {
	constantValue() any
	setConstantValue(v any)
}

// ValueCodec writes and reads one Go element type's values through the
// msgp runtime, and builds a fresh attribute of the requested storage
// flavor so Manager.DecodeMsg can reconstruct attributes from a wire
// stream without knowing their element type at compile time. Codecs are
// registered under TypeName() (e.g. "geometry.Point3"), mirroring how
// Manager already keys runtime type checks (manager.go asDense et al.).
type ValueCodec interface {
	WriteValue(w *msgp.Writer, v any) error
	ReadValue(r *msgp.Reader) (any, error)
	NewConstant(n int, props Properties) Attribute
	NewDense(n int, props Properties) Attribute
	NewSparse(n int, props Properties) Attribute
}

// typedCodec adapts a pair of (typed write, typed read) funcs into a
// ValueCodec, doing the any<->T boxing in one place so every registered
// element type only has to supply its msgp encode/decode logic.
type typedCodec[T any] struct {
	write func(w *msgp.Writer, v T) error
	read  func(r *msgp.Reader) (T, error)
}

func (c typedCodec[T]) WriteValue(w *msgp.Writer, v any) error { return c.write(w, v.(T)) }
func (c typedCodec[T]) ReadValue(r *msgp.Reader) (any, error)  { return c.read(r) }

func (c typedCodec[T]) NewConstant(n int, props Properties) Attribute {
	var zero T
	return NewConstant[T](n, zero, props)
}

func (c typedCodec[T]) NewDense(n int, props Properties) Attribute {
	var zero T
	return NewDense[T](n, zero, props)
}

func (c typedCodec[T]) NewSparse(n int, props Properties) Attribute {
	var zero T
	return NewSparse[T](n, zero, props)
}

var codecRegistry = make(map[string]ValueCodec)

// RegisterCodec installs the msgp codec for attributes of element type T,
// keyed by T's runtime type name. Call it from an init() alongside any
// new attribute element type that must survive AttributeManager
// serialization (§4.B); FindOrCreateDense/Sparse/Constant work for any T
// regardless, but EncodeMsg/DecodeMsg only understand registered types.
func RegisterCodec[T any](write func(w *msgp.Writer, v T) error, read func(r *msgp.Reader) (T, error)) {
	codecRegistry[typeName[T]()] = typedCodec[T]{write: write, read: read}
}

func codecFor(typ string) (ValueCodec, bool) {
	c, ok := codecRegistry[typ]
	return c, ok
}

func init() {
	RegisterCodec[geometry.Point2](
		func(w *msgp.Writer, v geometry.Point2) error { return v.EncodeMsg(w) },
		func(r *msgp.Reader) (geometry.Point2, error) {
			var p geometry.Point2
			err := p.DecodeMsg(r)
			return p, err
		},
	)
	RegisterCodec[geometry.Point3](
		func(w *msgp.Writer, v geometry.Point3) error { return v.EncodeMsg(w) },
		func(r *msgp.Reader) (geometry.Point3, error) {
			var p geometry.Point3
			err := p.DecodeMsg(r)
			return p, err
		},
	)
	RegisterCodec[basic.UUID](
		func(w *msgp.Writer, v basic.UUID) error { return v.EncodeMsg(w) },
		func(r *msgp.Reader) (basic.UUID, error) {
			var u basic.UUID
			err := u.DecodeMsg(r)
			return u, err
		},
	)
	RegisterCodec[basic.Index](
		func(w *msgp.Writer, v basic.Index) error { return w.WriteUint32(v) },
		func(r *msgp.Reader) (basic.Index, error) { return r.ReadUint32() },
	)
	RegisterCodec[[2]basic.Index](
		func(w *msgp.Writer, v [2]basic.Index) error {
			if err := w.WriteArrayHeader(2); err != nil {
				return err
			}
			if err := w.WriteUint32(v[0]); err != nil {
				return err
			}
			return w.WriteUint32(v[1])
		},
		func(r *msgp.Reader) ([2]basic.Index, error) {
			var v [2]basic.Index
			if _, err := r.ReadArrayHeader(); err != nil {
				return v, err
			}
			a, err := r.ReadUint32()
			if err != nil {
				return v, err
			}
			b, err := r.ReadUint32()
			if err != nil {
				return v, err
			}
			return [2]basic.Index{a, b}, nil
		},
	)
	RegisterCodec[float64](
		func(w *msgp.Writer, v float64) error { return w.WriteFloat64(v) },
		func(r *msgp.Reader) (float64, error) { return r.ReadFloat64() },
	)
	RegisterCodec[bool](
		func(w *msgp.Writer, v bool) error { return w.WriteBool(v) },
		func(r *msgp.Reader) (bool, error) { return r.ReadBool() },
	)
	RegisterCodec[string](
		func(w *msgp.Writer, v string) error { return w.WriteString(v) },
		func(r *msgp.Reader) (string, error) { return r.ReadString() },
	)
	RegisterCodec[int](
		func(w *msgp.Writer, v int) error { return w.WriteInt64(int64(v)) },
		func(r *msgp.Reader) (int, error) {
			v, err := r.ReadInt64()
			return int(v), err
		},
	)
}
