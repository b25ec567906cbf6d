// Package cli defines the Cobra command tree for the thingssdk CLI. Each file
// registers one top-level command with the root. Commands turn flags and
// config into explicit options for the internal packages and only handle
// I/O formatting and exit status themselves.
package cli
