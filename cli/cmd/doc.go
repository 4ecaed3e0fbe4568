// Package cmd implements the humandate subcommands.
//
// Every command resolves phrases against the instant named by the shared
// [Reference] flags and writes to the output stored in its context with
// [WithStreams], standard output by default.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path
	// of the YAML configuration file.
	ConfigIdentifier = "config"
)
