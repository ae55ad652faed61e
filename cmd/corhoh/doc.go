// Package main hosts the corhoh CLI entrypoint and command graph.
//
// The root command builds the TEI corpus from a metadata table and a
// directory of numbered transcripts. Subcommands inspect a single transcript
// and scaffold or validate the configuration file. Configuration resolution,
// flag overrides and logger setup live here so the internal packages stay
// free of CLI concerns.
package main
