package skeleton

import (
	"io/fs"
	"os"
)

// Filesystem is the set of operations the generator performs.
// Both methods must fail if the target already exists.
type Filesystem interface {
	// Mkdir creates a single directory. The parent must already exist.
	Mkdir(path string, perm fs.FileMode) error

	// WriteNewFile creates path and writes data to it.
	WriteNewFile(path string, data []byte, perm fs.FileMode) error
}

// OSFilesystem implements Filesystem on the local disk.
type OSFilesystem struct{}

// Mkdir implements Filesystem.
func (OSFilesystem) Mkdir(path string, perm fs.FileMode) error {
	return os.Mkdir(path, perm)
}

// WriteNewFile implements Filesystem.
func (OSFilesystem) WriteNewFile(path string, data []byte, perm fs.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
