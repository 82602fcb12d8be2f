// Package logging provides a minimal logging interface and adapters for
// dynabind. The Logger interface defines the standard structured methods
// (Debug, Info, Warn, Error) that the dispatch and event layers use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// The design intentionally keeps the interface minimal so embedding
// applications can plug any structured logger.
package logging
