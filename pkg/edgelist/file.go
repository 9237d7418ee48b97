package edgelist

import (
	"io"
	"strings"

	"github.com/golang/snappy"
	"golang.org/x/exp/mmap"
)

// CompressedSuffix marks edge-list files stored in the snappy framing format
const CompressedSuffix = ".sz"

// File is an edge-list file opened for reading through a memory mapping
type File struct {
	io.Reader
	mapped *mmap.ReaderAt
}

// OpenFile memory-maps the file at path. Files ending in CompressedSuffix
// are decoded as snappy streams while they are read.
func OpenFile(path string) (*File, error) {
	mapped, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}

	var r io.Reader = io.NewSectionReader(mapped, 0, int64(mapped.Len()))
	if strings.HasSuffix(path, CompressedSuffix) {
		r = snappy.NewReader(r)
	}
	return &File{Reader: r, mapped: mapped}, nil
}

// Size returns the mapped size of the file on disk
func (f *File) Size() int {
	return f.mapped.Len()
}

// Close releases the mapping
func (f *File) Close() error {
	return f.mapped.Close()
}
