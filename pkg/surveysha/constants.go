package surveysha

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Every survey fingerprinted or verified
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (unknown flags, unexpected args)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitConfigError       = 10 // Invalid configuration
	ExitRootNotFound      = 14 // Surveys root directory missing
	ExitFingerprintFailed = 15 // At least one survey could not be fingerprinted
	ExitStaleFingerprint  = 16 // verify found stale, missing or invalid fingerprints
)

const (
	// DefaultRoot is the directory scanned for survey subdirectories,
	// relative to the working directory.
	DefaultRoot = "surveys"

	// DefaultPattern selects every immediate subdirectory of the root.
	DefaultPattern = "*"

	// DefaultAlgorithm is the digest used for fingerprints.
	DefaultAlgorithm = "sha1"

	// DefaultOutputFile is the fingerprint file written next to the survey files.
	DefaultOutputFile = "sha.json"

	// DefaultDefinitionSuffix is appended to the survey name to locate the definition file.
	DefaultDefinitionSuffix = ".json"

	// DefaultScoreSuffix is appended to the survey name to locate the scoring file.
	DefaultScoreSuffix = ".score.js"

	// OutputFileMode is the permission used when writing fingerprint files.
	OutputFileMode = 0o644
)
