// Package app encapsulates the application's dependencies, configuration,
// and lifecycle: logger construction, plan loader selection, analysis,
// reporting, and optional simulated execution.
package app
