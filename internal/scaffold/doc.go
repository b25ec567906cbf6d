// Package scaffold creates a new device project. Run decides whether the
// destination may be written (asking before overwriting a non-empty
// directory), then Materialize copies the embedded templates, writes
// package.json, and captures devices.json from the detected serial ports.
package scaffold
