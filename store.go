package empdb

import (
	"fmt"
	"math"
	"os"

	"github.com/ananthvk/empdb/internal/dbfile"
	"github.com/ananthvk/empdb/internal/record"
	"github.com/spf13/afero"
)

// No index, lookups are a linear scan of the in-memory record list

// Employee is one entry in the store. Name is the lookup key, duplicates are
// permitted and Delete removes the first match only
type Employee = record.Record

// Store holds a database file's header and record list in memory. Mutations
// (Append, Delete) are invisible on disk until Save is called. A Store owns
// its file handle exclusively, it is not safe for concurrent use and two
// processes must never open the same file at once
type Store struct {
	fs      afero.Fs
	path    string
	file    afero.File
	header  *dbfile.Header
	records []record.Record
}

// Info describes a store's validated header alongside the file's actual
// on-disk length
type Info struct {
	Version    uint16
	Count      uint16
	FileSize   uint32
	ActualSize int64
}

// Create creates a new empty database file at the given path and returns a
// handle to it. The fresh header is persisted immediately. If a file already
// exists at the path, ErrExist is returned
func Create(fs afero.Fs, path string) (*Store, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrExist, path)
	}

	file, err := fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	header := dbfile.NewHeader()
	if _, err := dbfile.WriteStore(file, header, nil); err != nil {
		file.Close()
		return nil, err
	}

	return &Store{
		fs:     fs,
		path:   path,
		file:   file,
		header: header,
	}, nil
}

// Open opens an existing database file, validates its header and loads the
// full record list into memory. It returns ErrCorruptHeader or
// ErrTruncatedRead if the file does not pass validation
func Open(fs afero.Fs, path string) (*Store, error) {
	file, err := fs.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	header, err := dbfile.ReadHeader(file)
	if err != nil {
		file.Close()
		return nil, err
	}

	records, err := dbfile.ReadRecords(file, header)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &Store{
		fs:      fs,
		path:    path,
		file:    file,
		header:  header,
		records: records,
	}, nil
}

// Append adds a new record at the end of the list and increments the header
// count. It fails with ErrFieldTooLong if name or address exceeds the fixed
// field capacity, the store is left unchanged on failure
func (store *Store) Append(name string, address string, hours uint32) error {
	if len(store.records) >= math.MaxUint16 {
		return fmt.Errorf("%w: store holds %d records", ErrTooManyRecords, len(store.records))
	}
	rec, err := record.New(name, address, hours)
	if err != nil {
		return err
	}
	store.records = append(store.records, rec)
	store.header.Count++
	return nil
}

// Find returns the index of the first record with the given name, scanning
// left to right. It returns ErrNotFound if no record matches
func (store *Store) Find(name string) (int, error) {
	for i := range store.records {
		if store.records[i].Name == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Delete removes the first record with the given name, preserving the
// relative order of the remaining records, and decrements the header count.
// It fails with ErrNotFound (leaving the store unchanged) if no record
// matches
func (store *Store) Delete(name string) error {
	idx, err := store.Find(name)
	if err != nil {
		return err
	}
	compacted := make([]record.Record, 0, len(store.records)-1)
	compacted = append(compacted, store.records[:idx]...)
	compacted = append(compacted, store.records[idx+1:]...)
	store.records = compacted
	store.header.Count--
	return nil
}

// List returns a copy of the record list in insertion order
func (store *Store) List() []Employee {
	out := make([]Employee, len(store.records))
	copy(out, store.records)
	return out
}

// Count returns the number of records currently in the store
func (store *Store) Count() int {
	return len(store.records)
}

// Info returns the store's header fields and the file's actual length on
// disk. Intended for inspection and debugging
func (store *Store) Info() (Info, error) {
	stat, err := store.file.Stat()
	if err != nil {
		return Info{}, err
	}
	return Info{
		Version:    store.header.Version,
		Count:      store.header.Count,
		FileSize:   store.header.FileSize,
		ActualSize: stat.Size(),
	}, nil
}

// Save rewrites the entire file (header followed by every record in list
// order) and returns the number of bytes written. The rewrite is not atomic,
// a failure mid-write may leave the file truncated or incomplete
func (store *Store) Save() (int64, error) {
	return dbfile.WriteStore(store.file, store.header, store.records)
}

// Close closes the underlying file. Unsaved mutations are lost
func (store *Store) Close() error {
	return store.file.Close()
}
