// Package logger wraps zap with a global sugared logger and context helpers.
//
// Records go to stderr in a console encoding so that stdout stays reserved for
// the resolved update information. Callers attach named or key-value scoped
// loggers to a context and the package-level helpers (DebugKV, InfoKV and
// ErrorKV) pull the logger back out of it.
package logger
