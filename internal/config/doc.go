// Package config provides configuration loading for Quill.
//
// Configuration is read from a TOML or YAML file (chosen by file
// extension), then overridden by QUILL_-prefixed environment
// variables. A missing config file is not an error; defaults apply.
//
//	cfg, err := config.Load("quill.toml")
//
// The Watcher reloads the file when it changes on disk, so a running
// interactive session can pick up a new log level or history limit
// without restarting.
package config
