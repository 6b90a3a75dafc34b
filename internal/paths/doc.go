// Package paths resolves the file system locations sklint works with:
// the XDG config/cache homes for its own configuration and the Claude
// Code skills directory it analyzes by default.
package paths
