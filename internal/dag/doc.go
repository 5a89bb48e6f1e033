// Package dag is the analysis core of the application. It takes a plan of
// work items with declared dependencies, validates it, and produces a
// topologically ordered execution plan grouped into parallel-safe stages,
// with file-level conflict detection inside each stage.
//
// The analysis is a pure, stateless computation: it holds no state across
// calls, performs no I/O, and is safe to invoke concurrently with
// different inputs.
package dag
