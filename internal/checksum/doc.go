// Package checksum provides content digests for survey fingerprints.
//
// Files are hashed as opaque byte streams: no normalization is applied, so any
// byte change produces a different digest. Digests are lowercase hex strings.
//
// Two algorithms are available:
//
//   - sha1: 40 hex characters, the historical fingerprint format (default)
//   - sha256: 64 hex characters
//
// # Example Usage
//
//	calculator, err := checksum.ForAlgorithm("sha1")
//	if err != nil {
//	    return err
//	}
//	digest := calculator.Calculate(fileContent)
//
// # Thread Safety
//
// All calculators are zero-size values and safe for concurrent use by multiple goroutines.
package checksum
