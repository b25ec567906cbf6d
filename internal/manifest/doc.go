// Package manifest builds the package.json written into a new project and
// validates generated JSON documents (package.json, devices.json) against the
// JSON Schemas embedded in the binary.
package manifest
