package basic

import "github.com/tinylib/msgp/msgp"

// EncodeMsg writes u as its 16 raw bytes (§6: "uuid: 16 raw bytes").
func (u UUID) EncodeMsg(w *msgp.Writer) error {
	b := u.Bytes()
	return w.WriteBytes(b[:])
}

// DecodeMsg reads a UUID written by EncodeMsg.
func (u *UUID) DecodeMsg(r *msgp.Reader) error {
	raw, err := r.ReadBytes(nil)
	if err != nil {
		return err
	}
	var b [16]byte
	copy(b[:], raw)
	*u = UUIDFromBytes(b)
	return nil
}
