package dbfile

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ananthvk/empdb/internal/record"
)

// Magic identifies a database file. Version is bumped whenever the on-disk
// layout changes, there is no compatibility across versions
const (
	Magic   = 0x4C4C4144
	Version = 1
)

const HeaderSize = 12 // In bytes

// Header is the fixed-size metadata block at offset 0 of every database file.
// Count and FileSize are derived from the record list and rewritten on every
// save, FileSize must always equal HeaderSize + Count * record.Size
type Header struct {
	Magic    uint32
	Version  uint16
	Count    uint16
	FileSize uint32
}

// NewHeader returns a fresh header for an empty store. It performs no I/O,
// the caller persists it with WriteStore
func NewHeader() *Header {
	return &Header{
		Magic:    Magic,
		Version:  Version,
		Count:    0,
		FileSize: HeaderSize,
	}
}

// Encode serializes the header into its fixed 12 byte wire form, all fields
// big endian in declaration order: magic(4), version(2), count(2), filesize(4)
func (h *Header) Encode() []byte {
	buf := make([]byte, HeaderSize)
	binary.BigEndian.PutUint32(buf[0:], h.Magic)
	binary.BigEndian.PutUint16(buf[4:], h.Version)
	binary.BigEndian.PutUint16(buf[6:], h.Count)
	binary.BigEndian.PutUint32(buf[8:], h.FileSize)
	return buf
}

// DecodeHeader deserializes a header from its 12 byte wire form. It does not
// validate the fields, see ReadHeader
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) != HeaderSize {
		return Header{}, fmt.Errorf("expected %d bytes, got %d", HeaderSize, len(buf))
	}
	return Header{
		Magic:    binary.BigEndian.Uint32(buf[0:]),
		Version:  binary.BigEndian.Uint16(buf[4:]),
		Count:    binary.BigEndian.Uint16(buf[6:]),
		FileSize: binary.BigEndian.Uint32(buf[8:]),
	}, nil
}

// validate checks the header against the file's actual on-disk length. All
// failing checks are collected and reported together, wrapped in
// ErrCorruptHeader, rather than stopping at the first mismatch
func (h *Header) validate(actualSize int64) error {
	var errs []error
	if h.Magic != Magic {
		errs = append(errs, fmt.Errorf("%w: got %#08x, want %#08x", ErrBadMagic, h.Magic, uint32(Magic)))
	}
	if h.Version != Version {
		errs = append(errs, fmt.Errorf("%w: got %d, want %d", ErrBadVersion, h.Version, Version))
	}
	expected := uint32(HeaderSize + int(h.Count)*record.Size)
	if h.FileSize != expected {
		errs = append(errs, fmt.Errorf("%w: header declares %d bytes, %d records require %d",
			ErrSizeMismatch, h.FileSize, h.Count, expected))
	}
	if int64(h.FileSize) != actualSize {
		errs = append(errs, fmt.Errorf("%w: header declares %d bytes, file is %d bytes on disk",
			ErrSizeMismatch, h.FileSize, actualSize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrCorruptHeader, errors.Join(errs...))
	}
	return nil
}
