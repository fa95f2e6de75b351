package geometry

import "github.com/tinylib/msgp/msgp"

// EncodeMsg writes p as its two coordinates (§6 "Point<D>: D float64s").
func (p Point2) EncodeMsg(w *msgp.Writer) error {
	if err := w.WriteFloat64(p.X); err != nil {
		return err
	}
	return w.WriteFloat64(p.Y)
}

// DecodeMsg reads a Point2 written by EncodeMsg.
func (p *Point2) DecodeMsg(r *msgp.Reader) error {
	x, err := r.ReadFloat64()
	if err != nil {
		return err
	}
	y, err := r.ReadFloat64()
	if err != nil {
		return err
	}
	p.X, p.Y = x, y
	return nil
}

// EncodeMsg writes p as its three coordinates (§6 "Point<D>: D float64s").
func (p Point3) EncodeMsg(w *msgp.Writer) error {
	if err := w.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := w.WriteFloat64(p.Y); err != nil {
		return err
	}
	return w.WriteFloat64(p.Z)
}

// DecodeMsg reads a Point3 written by EncodeMsg.
func (p *Point3) DecodeMsg(r *msgp.Reader) error {
	x, err := r.ReadFloat64()
	if err != nil {
		return err
	}
	y, err := r.ReadFloat64()
	if err != nil {
		return err
	}
	z, err := r.ReadFloat64()
	if err != nil {
		return err
	}
	p.X, p.Y, p.Z = x, y, z
	return nil
}
