package record

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	// Size is the encoded size of a record on disk, in bytes
	Size = 516

	fieldCapacity = 256 // name / address slot size, including the NUL terminator

	// MaxFieldLength is the longest name or address that fits in a field slot,
	// one byte is always reserved for the NUL terminator
	MaxFieldLength = fieldCapacity - 1

	hoursOffset = 2 * fieldCapacity
)

// Record is a single fixed-size entry in the store. Name doubles as the lookup
// key, the store does not require it to be unique
type Record struct {
	Name    string
	Address string
	Hours   uint32
}

// New creates a Record from its fields. It returns ErrFieldTooLong if name or
// address does not fit in its fixed-size slot
func New(name string, address string, hours uint32) (Record, error) {
	if len(name) > MaxFieldLength {
		return Record{}, fmt.Errorf("%w: name is %d bytes, max %d", ErrFieldTooLong, len(name), MaxFieldLength)
	}
	if len(address) > MaxFieldLength {
		return Record{}, fmt.Errorf("%w: address is %d bytes, max %d", ErrFieldTooLong, len(address), MaxFieldLength)
	}
	return Record{Name: name, Address: address, Hours: hours}, nil
}

// Encode serializes the record into its fixed 516 byte wire form:
// name (256 bytes, NUL padded), address (256 bytes, NUL padded), hours
// (4 bytes, big endian). Text is copied byte for byte, never byte-swapped.
// Oversized fields are an error, they are never truncated silently
func (r *Record) Encode() ([]byte, error) {
	if len(r.Name) > MaxFieldLength {
		return nil, fmt.Errorf("%w: name is %d bytes, max %d", ErrFieldTooLong, len(r.Name), MaxFieldLength)
	}
	if len(r.Address) > MaxFieldLength {
		return nil, fmt.Errorf("%w: address is %d bytes, max %d", ErrFieldTooLong, len(r.Address), MaxFieldLength)
	}
	buf := make([]byte, Size)
	copy(buf[0:], r.Name)
	copy(buf[fieldCapacity:], r.Address)
	binary.BigEndian.PutUint32(buf[hoursOffset:], r.Hours)
	return buf, nil
}

// Decode deserializes a record from its 516 byte wire form. Text fields are
// read up to the first NUL byte in their slot
func Decode(buf []byte) (Record, error) {
	if len(buf) != Size {
		return Record{}, fmt.Errorf("expected %d bytes, got %d", Size, len(buf))
	}
	return Record{
		Name:    decodeField(buf[0:fieldCapacity]),
		Address: decodeField(buf[fieldCapacity:hoursOffset]),
		Hours:   binary.BigEndian.Uint32(buf[hoursOffset:]),
	}, nil
}

func decodeField(slot []byte) string {
	if i := bytes.IndexByte(slot, 0); i >= 0 {
		slot = slot[:i]
	}
	return string(slot)
}
