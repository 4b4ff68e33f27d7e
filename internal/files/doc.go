// Package files groups the file-related sub-packages.
//
//   - filesystem: filesystem abstraction with OS and in-memory implementations
//   - scanner: survey directory discovery under a root
//
// # Usage
//
//	import (
//	    "github.com/surveykit/surveysha/internal/files/filesystem"
//	    "github.com/surveykit/surveysha/internal/files/scanner"
//	)
//
//	surveyScanner := scanner.NewScanner(surveysha.DefaultLayout(), "*")
//	surveys, err := surveyScanner.Discover("./surveys")
package files
