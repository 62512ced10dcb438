// Package errors provides structured, actionable error messages for routegen.
//
// Each error carries a unique code (e.g. "R020") that maps to a short
// message, a longer explanation, and a suggestion for fixing the problem.
// Errors wrap an underlying cause where one exists and are compatible with
// the standard errors.Is/errors.As machinery.
//
// Error categories:
//   - config: configuration file or flag problems
//   - scan: filesystem scanning failures
//   - build: route tree construction problems (identifier collisions, etc.)
//   - emit: serialization and output write failures
//   - cli: command usage problems (scaffolding conflicts, etc.)
package errors
