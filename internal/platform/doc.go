// Package platform hides the filesystem differences between Unix and Windows
// that the CLI cares about. Today that is only permission bits, which Windows
// does not honor.
package platform
