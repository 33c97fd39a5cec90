package dbfile

import (
	"errors"
	"fmt"
	"io"

	"github.com/ananthvk/empdb/internal/record"
	"github.com/spf13/afero"
)

// ReadHeader reads and validates the database header at the start of the
// file. It fails with ErrTruncatedRead if the file is shorter than a header,
// and with ErrCorruptHeader (naming every failing check) if the magic,
// version, or size invariants do not hold. The file is never modified
func ReadHeader(file afero.File) (*Header, error) {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	var buf [HeaderSize]byte
	if n, err := io.ReadFull(file, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: header needs %d bytes, file has %d", ErrTruncatedRead, HeaderSize, n)
		}
		return nil, err
	}

	header, err := DecodeHeader(buf[:])
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if err := header.validate(info.Size()); err != nil {
		return nil, err
	}

	return &header, nil
}

// ReadRecords reads the record list that follows the header. It positions the
// cursor immediately after the header and reads exactly Count records,
// failing with ErrTruncatedRead if fewer bytes are available than the header
// promises
func ReadRecords(file afero.File, header *Header) ([]record.Record, error) {
	if _, err := file.Seek(HeaderSize, io.SeekStart); err != nil {
		return nil, err
	}

	records := make([]record.Record, 0, header.Count)
	buf := make([]byte, record.Size)
	for i := 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(file, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: header declares %d records, file ends inside record %d",
					ErrTruncatedRead, header.Count, i)
			}
			return nil, err
		}
		rec, err := record.Decode(buf)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
