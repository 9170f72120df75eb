package fio

import (
	"github.com/gofrs/flock"
)

type FileLocker interface {
	TryLock() (bool, error)
	Unlock() error
}

const flockSuffix = ".lock"

var _ FileLocker = (*flock.Flock)(nil)

// NewFlock return the advisory lock guarding the log file at path
func NewFlock(path string) *flock.Flock {
	return flock.New(path + flockSuffix)
}
