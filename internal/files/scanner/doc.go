// Package scanner provides survey discovery.
//
// The scanner package is responsible for:
//   - Listing the immediate subdirectories of a surveys root (one level, no recursion)
//   - Filtering them by a shell-glob pattern (doublestar syntax)
//   - Deriving each survey's name and file paths from its directory name
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
