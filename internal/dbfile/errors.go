package dbfile

import "errors"

var (
	ErrCorruptHeader = errors.New("corrupt database header")
	ErrBadMagic      = errors.New("bad magic")
	ErrBadVersion    = errors.New("unsupported version")
	ErrSizeMismatch  = errors.New("file size mismatch")

	ErrTruncatedRead = errors.New("truncated read")

	ErrTooManyRecords = errors.New("record count exceeds format limit")
)
