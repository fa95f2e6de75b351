package attribute

import (
	"github.com/pkg/errors"
	"github.com/tinylib/msgp/msgp"

	"github.com/geode-kernel/geode/pkg/basic"
)

// ErrUnknownAttributeType is returned by EncodeMsg/DecodeMsg when an
// attribute's element type has no registered ValueCodec.
var ErrUnknownAttributeType = errors.New("attribute: no codec registered for element type")

// SerializationVersion is the current AttributeManager wire version (§6);
// ManagerVersions is the table EncodeRecord/DecodeRecord migrate through.
const SerializationVersion basic.ArchiveVersion = 1

// ManagerVersions is the growable-archive version table for
// AttributeManager records (§4.A, §6). It starts with no migrations
// registered; a future format change registers the Current-1 -> Current
// upgrade here rather than breaking old archives.
var ManagerVersions = basic.NewVersionTable(SerializationVersion)

// EncodeMsg writes every registered attribute, in insertion order, as
// [name, kind, typeName, assignable, interpolable, values...] (§6:
// "growable records: known fields first, unknown trailing fields
// preserved by a migration"). Constant attributes write one value, dense
// attributes write exactly NbElements values, and sparse attributes write
// only their explicitly set (index, value) pairs.
func (m *Manager) EncodeMsg(w *msgp.Writer) error {
	if err := w.WriteUint32(uint32(m.n)); err != nil {
		return errors.Wrap(err, "writing element count")
	}
	if err := w.WriteArrayHeader(uint32(m.attributes.Len())); err != nil {
		return errors.Wrap(err, "writing attribute count")
	}

	var encodeErr error
	m.attributes.Range(func(name string, a Attribute) bool {
		codec, ok := codecFor(a.TypeName())
		if !ok {
			encodeErr = errors.Wrapf(ErrUnknownAttributeType, "attribute %q (%s)", name, a.TypeName())
			return false
		}
		if err := w.WriteString(name); err != nil {
			encodeErr = err
			return false
		}
		if err := w.WriteInt8(int8(a.Kind())); err != nil {
			encodeErr = err
			return false
		}
		if err := w.WriteString(a.TypeName()); err != nil {
			encodeErr = err
			return false
		}
		props := a.Properties()
		if err := w.WriteBool(props.Assignable); err != nil {
			encodeErr = err
			return false
		}
		if err := w.WriteBool(props.Interpolable); err != nil {
			encodeErr = err
			return false
		}

		switch a.Kind() {
		case Constant:
			ca := a.(constantAccessor)
			encodeErr = codec.WriteValue(w, ca.constantValue())
		case Dense:
			da := a.(valueAccessor)
			if err := w.WriteArrayHeader(uint32(a.Len())); err != nil {
				encodeErr = err
				return false
			}
			for i := 0; i < a.Len(); i++ {
				if err := codec.WriteValue(w, da.valueAt(i)); err != nil {
					encodeErr = err
					return false
				}
			}
		case Sparse:
			sa := a.(sparseAccessor)
			idx := sa.indices()
			if err := w.WriteArrayHeader(uint32(len(idx))); err != nil {
				encodeErr = err
				return false
			}
			for _, i := range idx {
				if err := w.WriteUint32(uint32(i)); err != nil {
					encodeErr = err
					return false
				}
				if err := codec.WriteValue(w, sa.valueAt(i)); err != nil {
					encodeErr = err
					return false
				}
			}
		}
		return encodeErr == nil
	})
	return encodeErr
}

// DecodeMsg replaces m's contents with the manager written by EncodeMsg.
func (m *Manager) DecodeMsg(r *msgp.Reader) error {
	n, err := r.ReadUint32()
	if err != nil {
		return errors.Wrap(err, "reading element count")
	}
	count, err := r.ReadArrayHeader()
	if err != nil {
		return errors.Wrap(err, "reading attribute count")
	}

	attributes := basic.NewOrderedMap[string, Attribute]()
	for i := uint32(0); i < count; i++ {
		name, err := r.ReadString()
		if err != nil {
			return errors.Wrap(err, "reading attribute name")
		}
		kindByte, err := r.ReadInt8()
		if err != nil {
			return errors.Wrapf(err, "reading kind for attribute %q", name)
		}
		typ, err := r.ReadString()
		if err != nil {
			return errors.Wrapf(err, "reading type for attribute %q", name)
		}
		assignable, err := r.ReadBool()
		if err != nil {
			return errors.Wrapf(err, "reading assignable flag for attribute %q", name)
		}
		interpolable, err := r.ReadBool()
		if err != nil {
			return errors.Wrapf(err, "reading interpolable flag for attribute %q", name)
		}
		codec, ok := codecFor(typ)
		if !ok {
			return errors.Wrapf(ErrUnknownAttributeType, "attribute %q (%s)", name, typ)
		}
		props := Properties{Assignable: assignable, Interpolable: interpolable}

		var attr Attribute
		switch StorageKind(kindByte) {
		case Constant:
			c := codec.NewConstant(int(n), props)
			v, err := codec.ReadValue(r)
			if err != nil {
				return errors.Wrapf(err, "reading value for attribute %q", name)
			}
			c.(constantAccessor).setConstantValue(v)
			attr = c
		case Dense:
			d := codec.NewDense(int(n), props)
			cnt, err := r.ReadArrayHeader()
			if err != nil {
				return errors.Wrapf(err, "reading value count for attribute %q", name)
			}
			va := d.(valueAccessor)
			for j := uint32(0); j < cnt; j++ {
				v, err := codec.ReadValue(r)
				if err != nil {
					return errors.Wrapf(err, "reading value %d for attribute %q", j, name)
				}
				va.setValueAt(int(j), v)
			}
			attr = d
		case Sparse:
			s := codec.NewSparse(int(n), props)
			cnt, err := r.ReadArrayHeader()
			if err != nil {
				return errors.Wrapf(err, "reading entry count for attribute %q", name)
			}
			va := s.(valueAccessor)
			for j := uint32(0); j < cnt; j++ {
				idx, err := r.ReadUint32()
				if err != nil {
					return errors.Wrapf(err, "reading index %d for attribute %q", j, name)
				}
				v, err := codec.ReadValue(r)
				if err != nil {
					return errors.Wrapf(err, "reading value for index %d of attribute %q", idx, name)
				}
				va.setValueAt(int(idx), v)
			}
			attr = s
		default:
			return errors.Errorf("attribute %q: unknown storage kind %d", name, kindByte)
		}
		attributes.Set(name, attr)
	}

	m.attributes = attributes
	m.n = int(n)
	return nil
}
