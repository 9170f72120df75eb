package model

import (
	"io"
	"math"

	"github.com/cqkv/rkv/fio"
)

type DataFile struct {
	Path      string
	IoManager fio.IOManager
}

func OpenDataFile(path string, ioManager fio.IOManager) *DataFile {
	return &DataFile{
		Path:      path,
		IoManager: ioManager,
	}
}

func (df *DataFile) Sync() error {
	return df.IoManager.Sync()
}

func (df *DataFile) Close() error {
	return df.IoManager.Close()
}

func (df *DataFile) Size() (int64, error) {
	return df.IoManager.Size()
}

// Append writes data at the end of the file and returns the offset it starts at.
// The offset is taken from the file size at the moment of the write, never from
// a cursor left behind by an earlier read.
func (df *DataFile) Append(data []byte) (int64, error) {
	offset, err := df.IoManager.Size()
	if err != nil {
		return 0, err
	}

	n, err := df.IoManager.Write(data)
	if err != nil {
		return 0, err
	}
	if n != len(data) {
		return 0, io.ErrShortWrite
	}

	return offset, nil
}

// Reader returns a reader positioned at offset, independent of any other reader
func (df *DataFile) Reader(offset int64) io.Reader {
	return io.NewSectionReader(df.IoManager, offset, math.MaxInt64-offset)
}
