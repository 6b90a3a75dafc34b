// Package logging provides structured logging for the sklint CLI.
//
// It builds on log/slog with a TTY-optimized colorized text handler for
// interactive use, a JSON handler for machine consumption, and a multi
// handler for writing to a terminal and a log file at once. Color output
// honors NO_COLOR and TERM=dumb.
//
// Verbosity flags map to levels via [LevelFromVerbosity]: 0 → Warn,
// 1 → Info, 2 → Debug, 3+ → Trace.
package logging
