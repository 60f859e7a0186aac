package adapter

import (
	"io"
	"os"
)

// FileSystem defines an interface for file system operations to enable mocking
//
//go:generate mockgen -source=filesystem.go -destination=../mocks/filesystem.go -package=mocks -mock_names=FileSystem=MockFileSystem
type FileSystem interface {
	// MkdirAll creates a directory along with any necessary parents
	MkdirAll(path string, perm os.FileMode) error

	// Create creates or truncates the named file
	Create(name string) (File, error)

	// Open opens the named file for reading
	Open(name string) (ReadableFile, error)

	// Remove removes the named file or directory
	Remove(name string) error

	// ReadDir lists the entries of the named directory sorted by filename
	ReadDir(name string) ([]os.DirEntry, error)
}

// File defines an interface for writable file operations
type File interface {
	io.Writer
	io.Closer
}

// ReadableFile defines an interface for readable file operations
type ReadableFile interface {
	io.Reader
	io.Closer
	Stat() (os.FileInfo, error)
}

// RealFileSystem implements FileSystem using the standard os package
type RealFileSystem struct{}

// NewFileSystem creates a new real file system
func NewFileSystem() FileSystem {
	return &RealFileSystem{}
}

// MkdirAll creates a directory along with any necessary parents
func (fs *RealFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Create creates or truncates the named file
func (fs *RealFileSystem) Create(name string) (File, error) {
	return os.Create(name) //nolint:gosec,G304
}

// Open opens the named file for reading
func (fs *RealFileSystem) Open(name string) (ReadableFile, error) {
	return os.Open(name) //nolint:gosec,G304
}

// Remove removes the named file or directory
func (fs *RealFileSystem) Remove(name string) error {
	return os.Remove(name)
}

// ReadDir lists the entries of the named directory sorted by filename
func (fs *RealFileSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}
