// Package runtime holds the registry of device firmware runtimes a project can
// target. Each runtime selects a template subtree and fills the "engines" field
// of the generated package.json.
package runtime
