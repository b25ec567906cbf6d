// Package config manages user-level settings stored at ~/.thingssdk/config.yaml.
// Values can be overridden with THINGSSDK_* environment variables and are
// exposed to the rest of the CLI as a Settings struct built once per run.
package config
