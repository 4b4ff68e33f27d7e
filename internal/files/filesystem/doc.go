// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the small set of file operations surveysha needs, enabling
// testability through an in-memory implementation while maintaining compatibility
// with the OS filesystem.
//
// Key interfaces:
//   - FileSystemProvider: reads, writes and lists files and directories
//   - FileInfo: File metadata, an alias of fs.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation backed by go-billy's memfs, for testing
package filesystem
