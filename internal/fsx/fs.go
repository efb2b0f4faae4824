// Package fsx abstracts the handful of filesystem operations the save store
// performs, so the store can run against temp directories and
// fault-injecting fakes without a real game-engine filesystem present.
package fsx

import (
	"io"
	"io/fs"
	"os"
)

// File is the writable handle returned by Create. Sync is part of the
// contract: archives are flushed before the atomic replace.
type File interface {
	io.Writer
	Sync() error
	Close() error
}

// FS is the minimal capability surface the store needs.
type FS interface {
	Create(path string) (File, error)
	ReadFile(path string) ([]byte, error)
	Rename(oldpath, newpath string) error
	Remove(path string) error
	Stat(path string) (fs.FileInfo, error)
	MkdirAll(path string, perm fs.FileMode) error
}

// OS implements FS on the host filesystem.
type OS struct{}

func (OS) Create(path string) (File, error)     { return os.Create(path) }
func (OS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }
func (OS) Remove(path string) error             { return os.Remove(path) }
func (OS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}
func (OS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Rename replaces newpath if it already exists. On POSIX systems os.Rename
// is a single-step atomic replace; on platforms where it is not, the
// fallback removes the destination first, accepting the narrow window that
// implies there.
func (OS) Rename(oldpath, newpath string) error {
	err := os.Rename(oldpath, newpath)
	if err == nil {
		return nil
	}
	if !os.IsExist(err) && !os.IsPermission(err) {
		return err
	}
	if err := os.Remove(newpath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(oldpath, newpath)
}
