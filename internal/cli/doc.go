// Package cli parses command-line arguments into an application
// configuration, keeping all flag handling out of the app package.
package cli
