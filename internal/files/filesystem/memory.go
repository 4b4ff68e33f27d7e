package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// MemoryFileSystem implements FileSystemProvider on top of an in-memory
// go-billy filesystem. Relative paths are resolved against the root given
// to NewMemoryFileSystem.
type MemoryFileSystem struct {
	fs   billy.Filesystem
	root string
}

// NewMemoryFileSystem creates a new in-memory filesystem whose root directory exists.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))
	if !strings.HasPrefix(root, "/") {
		root = "/" + root
	}

	mfs := &MemoryFileSystem{
		fs:   memfs.New(),
		root: root,
	}
	// memfs cannot fail to create directories
	_ = mfs.fs.MkdirAll(root, 0o755)
	return mfs
}

// Root returns the virtual root directory.
func (mfs *MemoryFileSystem) Root() string {
	return mfs.root
}

// AddFile adds or replaces a file, creating parent directories as needed.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	if err := mfs.fs.MkdirAll(path.Dir(mfs.resolve(filePath)), 0o755); err != nil {
		panic(fmt.Sprintf("memory filesystem: add %s: %v", filePath, err))
	}
	if err := mfs.WriteFile(filePath, []byte(content), 0o644); err != nil {
		panic(fmt.Sprintf("memory filesystem: add %s: %v", filePath, err))
	}
}

// AddDir creates a directory and its parents.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	if err := mfs.fs.MkdirAll(mfs.resolve(dirPath), 0o755); err != nil {
		panic(fmt.Sprintf("memory filesystem: mkdir %s: %v", dirPath, err))
	}
}

// Remove deletes a file or empty directory.
func (mfs *MemoryFileSystem) Remove(filePath string) error {
	return mfs.fs.Remove(mfs.resolve(filePath))
}

// resolve maps a path onto the virtual filesystem, anchoring relative paths at the root.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(mfs.root, p)
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	abs := mfs.resolve(filePath)

	info, err := mfs.fs.Stat(abs)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return util.ReadFile(mfs.fs, abs)
}

// WriteFile implements FileSystemProvider.WriteFile.
// Like the OS provider, it does not create a missing parent directory.
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	abs := mfs.resolve(filePath)

	if info, err := mfs.fs.Stat(abs); err == nil && info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	parent, err := mfs.fs.Stat(path.Dir(abs))
	if err != nil {
		return &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if !parent.IsDir() {
		return &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrInvalid}
	}

	return util.WriteFile(mfs.fs, abs, data, perm)
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	abs := mfs.resolve(dirPath)

	info, err := mfs.fs.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	entries, err := mfs.fs.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	return entries, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	return mfs.fs.Stat(mfs.resolve(statPath))
}
