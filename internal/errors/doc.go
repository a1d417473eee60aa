// Package errors defines the engine's fail-fast error type.
//
// # Core Types
//
//   - EngineError: a Code plus a wrapped cause, returned by New and Wrap.
//
// # Usage
//
// The engine distinguishes three outcomes at every boundary:
//
//   - an expected empty result ("no plan", "no predicate") is a plain
//     ok=false or nil-slice return, never an EngineError;
//   - a recoverable collaborator failure (e.g. navigation finds no path)
//     is surfaced as a predicate, never an EngineError;
//   - a violated invariant (duplicate predicate id on a non-replacing
//     Add, a bound precondition missing at execution time, Update called
//     before Startup) is an EngineError wrapping a package-level
//     sentinel, paired with a panic so the bug surfaces immediately
//     instead of corrupting agent state.
package errors
