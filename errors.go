package empdb

import (
	"errors"

	"github.com/ananthvk/empdb/internal/dbfile"
	"github.com/ananthvk/empdb/internal/record"
)

var (
	ErrNotFound = errors.New("no record with that name")
	ErrExist    = errors.New("database file already exists")
)

// Aliases for internal sentinels so callers can match them with errors.Is
// without importing internal packages
var (
	ErrFieldTooLong   = record.ErrFieldTooLong
	ErrCorruptHeader  = dbfile.ErrCorruptHeader
	ErrTruncatedRead  = dbfile.ErrTruncatedRead
	ErrTooManyRecords = dbfile.ErrTooManyRecords
)
