package basic

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/tinylib/msgp/msgp"
)

// EncodeRecord writes one growable record: a little-endian uint32 version
// tag followed by the
// msgp-encoded payload produced by encode, per §6's binary stream format
// ("every record opens with its version tag, then a versioned payload").
// The payload is buffered so its length can be framed with WriteBytes,
// letting DecodeRecord read past an unrecognized record without parsing
// its contents.
func EncodeRecord(w io.Writer, version ArchiveVersion, encode func(*msgp.Writer) error) error {
	var buf bytes.Buffer
	pw := msgp.NewWriter(&buf)
	if err := encode(pw); err != nil {
		return errors.Wrap(err, "encoding record payload")
	}
	if err := pw.Flush(); err != nil {
		return errors.Wrap(err, "flushing record payload")
	}

	var tag [4]byte
	binary.LittleEndian.PutUint32(tag[:], uint32(version))
	if _, err := w.Write(tag[:]); err != nil {
		return errors.Wrap(err, "writing record version")
	}
	ow := msgp.NewWriter(w)
	if err := ow.WriteBytes(buf.Bytes()); err != nil {
		return errors.Wrap(err, "writing record payload")
	}
	return ow.Flush()
}

// DecodeRecord reads one record written by EncodeRecord, upgrades its
// payload to table.Current via table.Upgrade (a no-op when the record
// already carries the current version), and runs decode over the
// upgraded bytes.
func DecodeRecord(r io.Reader, table *VersionTable, decode func(*msgp.Reader) error) error {
	var tag [4]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return errors.Wrap(err, "reading record version")
	}
	version := binary.LittleEndian.Uint32(tag[:])
	or := msgp.NewReader(r)
	payload, err := or.ReadBytes(nil)
	if err != nil {
		return errors.Wrap(err, "reading record payload")
	}
	upgraded, err := table.Upgrade(ArchiveVersion(version), payload)
	if err != nil {
		return err
	}
	pr := msgp.NewReader(bytes.NewReader(upgraded))
	return decode(pr)
}
