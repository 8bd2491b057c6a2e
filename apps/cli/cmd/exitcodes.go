package cmd

// Exit codes for the reqq CLI
const (
	// ExitSuccess indicates the invocation completed. Transport-level
	// failures are reported to stderr but still exit zero.
	ExitSuccess = 0

	// ExitFileError indicates the -f payload could not be read
	ExitFileError = 2

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
