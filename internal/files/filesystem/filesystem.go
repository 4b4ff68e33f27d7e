package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider gives access to the files of a survey tree.
type FileSystemProvider interface {
	// ReadFile reads the whole file at the given path
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to the file at path, creating or truncating it.
	// The write has completed when WriteFile returns.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// ReadDir reads the directory entries at the given path.
	// Entries that are symbolic links report the metadata of their target
	// when it can be resolved.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
