// Package config defines the inputs of a resolution run and loads them from
// defaults, an optional YAML file, LYNC_* environment variables and CLI flags.
//
// The Config value is built once at the process boundary and passed down.
package config
