package fio

// IOManager can be custom in options
// writes always append to the end of the underlying file
type IOManager interface {
	ReadAt([]byte, int64) (int, error)
	Write([]byte) (int, error)
	Size() (int64, error)
	Sync() error
	Close() error
}
