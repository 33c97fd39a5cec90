package record

import (
	"errors"
	"strings"
	"testing"
)

func TestRecordRoundTrip(t *testing.T) {
	rec, err := New("James Lee", "Hong Kong1", 30)
	if err != nil {
		t.Fatalf("failed to create record: %v", err)
	}

	buf, err := rec.Encode()
	if err != nil {
		t.Fatalf("failed to encode record: %v", err)
	}
	if len(buf) != Size {
		t.Errorf("expected encoded record to be %d bytes, got %d", Size, len(buf))
	}

	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("failed to decode record: %v", err)
	}
	if decoded != rec {
		t.Errorf("expected %+v, got %+v", rec, decoded)
	}
}

func TestEncodeLayout(t *testing.T) {
	rec := Record{Name: "ab", Address: "cd", Hours: 0x01020304}
	buf, err := rec.Encode()
	if err != nil {
		t.Fatalf("failed to encode record: %v", err)
	}

	// Name at offset 0, NUL padded
	if buf[0] != 'a' || buf[1] != 'b' || buf[2] != 0 {
		t.Errorf("unexpected name bytes: %v", buf[0:3])
	}
	// Address at offset 256, NUL padded
	if buf[256] != 'c' || buf[257] != 'd' || buf[258] != 0 {
		t.Errorf("unexpected address bytes: %v", buf[256:259])
	}
	// Hours at offset 512, big endian
	if buf[512] != 0x01 || buf[513] != 0x02 || buf[514] != 0x03 || buf[515] != 0x04 {
		t.Errorf("unexpected hours bytes: %v", buf[512:516])
	}
}

func TestMaxLengthFieldFits(t *testing.T) {
	name := strings.Repeat("n", MaxFieldLength)
	address := strings.Repeat("a", MaxFieldLength)
	rec, err := New(name, address, 1)
	if err != nil {
		t.Fatalf("expected %d byte fields to fit, got %v", MaxFieldLength, err)
	}

	buf, err := rec.Encode()
	if err != nil {
		t.Fatalf("failed to encode record: %v", err)
	}
	decoded, err := Decode(buf)
	if err != nil {
		t.Fatalf("failed to decode record: %v", err)
	}
	if decoded.Name != name || decoded.Address != address {
		t.Errorf("round trip altered max length fields")
	}
}

func TestNewFieldTooLong(t *testing.T) {
	longName := strings.Repeat("x", 300)

	if _, err := New(longName, "address", 1); !errors.Is(err, ErrFieldTooLong) {
		t.Errorf("expected ErrFieldTooLong for oversized name, got %v", err)
	}
	if _, err := New("name", longName, 1); !errors.Is(err, ErrFieldTooLong) {
		t.Errorf("expected ErrFieldTooLong for oversized address, got %v", err)
	}
	// One byte over the limit, the terminator must always fit
	if _, err := New(strings.Repeat("x", MaxFieldLength+1), "address", 1); !errors.Is(err, ErrFieldTooLong) {
		t.Errorf("expected ErrFieldTooLong for %d byte name, got %v", MaxFieldLength+1, err)
	}
}

func TestEncodeFieldTooLong(t *testing.T) {
	rec := Record{Name: strings.Repeat("x", 300), Address: "address", Hours: 1}
	if _, err := rec.Encode(); !errors.Is(err, ErrFieldTooLong) {
		t.Errorf("expected ErrFieldTooLong, got %v", err)
	}
}

func TestDecodeWrongLength(t *testing.T) {
	if _, err := Decode(make([]byte, Size-1)); err == nil {
		t.Errorf("expected an error decoding a short buffer")
	}
	if _, err := Decode(make([]byte, Size+1)); err == nil {
		t.Errorf("expected an error decoding a long buffer")
	}
}
