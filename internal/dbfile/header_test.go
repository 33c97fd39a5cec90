package dbfile

import (
	"testing"
)

func TestNewHeader(t *testing.T) {
	header := NewHeader()
	if header.Magic != Magic {
		t.Errorf("expected magic %#08x, got %#08x", uint32(Magic), header.Magic)
	}
	if header.Version != Version {
		t.Errorf("expected version %d, got %d", Version, header.Version)
	}
	if header.Count != 0 {
		t.Errorf("expected count 0, got %d", header.Count)
	}
	if header.FileSize != HeaderSize {
		t.Errorf("expected file size %d, got %d", HeaderSize, header.FileSize)
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	header := Header{Magic: Magic, Version: Version, Count: 7, FileSize: 3624}
	buf := header.Encode()
	if len(buf) != HeaderSize {
		t.Errorf("expected encoded header to be %d bytes, got %d", HeaderSize, len(buf))
	}

	decoded, err := DecodeHeader(buf)
	if err != nil {
		t.Fatalf("failed to decode header: %v", err)
	}
	if decoded != header {
		t.Errorf("expected %+v, got %+v", header, decoded)
	}
}

func TestHeaderLayout(t *testing.T) {
	header := Header{Magic: Magic, Version: 1, Count: 2, FileSize: 1044}
	buf := header.Encode()

	// Magic 0x4C4C4144 at offset 0, big endian
	expected := []byte{0x4C, 0x4C, 0x41, 0x44}
	for i, b := range expected {
		if buf[i] != b {
			t.Errorf("expected magic byte at index %d to be %#02x, got %#02x", i, b, buf[i])
		}
	}
	// Version at offset 4, count at offset 6, file size at offset 8
	if buf[4] != 0x00 || buf[5] != 0x01 {
		t.Errorf("unexpected version bytes: %v", buf[4:6])
	}
	if buf[6] != 0x00 || buf[7] != 0x02 {
		t.Errorf("unexpected count bytes: %v", buf[6:8])
	}
	if buf[8] != 0x00 || buf[9] != 0x00 || buf[10] != 0x04 || buf[11] != 0x14 {
		t.Errorf("unexpected file size bytes: %v", buf[8:12])
	}
}

func TestDecodeHeaderWrongLength(t *testing.T) {
	if _, err := DecodeHeader(make([]byte, HeaderSize-1)); err == nil {
		t.Errorf("expected an error decoding a short buffer")
	}
}
