package dbfile

import (
	"fmt"
	"io"
	"math"

	"github.com/ananthvk/empdb/internal/record"
	"github.com/spf13/afero"
)

// WriteStore persists the header and the full record list as a whole-file
// rewrite: the file is truncated to zero, the header written at offset 0,
// then every record in list order. Count and FileSize are recomputed from
// len(records) rather than trusted from the caller. It returns the total
// number of bytes written.
//
// The rewrite is not atomic. A failure mid-write leaves the file truncated
// or partially written, callers needing crash safety must write to a
// temporary file and rename it themselves
func WriteStore(file afero.File, header *Header, records []record.Record) (int64, error) {
	if len(records) > math.MaxUint16 {
		return 0, fmt.Errorf("%w: %d records, max %d", ErrTooManyRecords, len(records), math.MaxUint16)
	}
	header.Count = uint16(len(records))
	header.FileSize = uint32(HeaderSize + len(records)*record.Size)

	if err := file.Truncate(0); err != nil {
		return 0, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	var total int64
	n, err := file.Write(header.Encode())
	total += int64(n)
	if err != nil {
		return total, err
	}

	for i := range records {
		buf, err := records[i].Encode()
		if err != nil {
			return total, err
		}
		n, err := file.Write(buf)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	if err := file.Sync(); err != nil {
		return total, err
	}
	return total, nil
}
