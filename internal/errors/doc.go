// Package errors provides error handling conventions for the sklint CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions. It also re-exports the
// cockroachdb/errors helpers used throughout the codebase so callers
// import a single errors package.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, skerrors.ErrSkillNotFound) {
//	    // handle missing SKILL.md
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error or analysis findings
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion for the CLI. It supports unwrapping via [errors.Unwrap]:
//
//	err := skerrors.NewUserError(skerrors.ErrInvalidConfig, "Check your config file")
//	var exitErr *skerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
