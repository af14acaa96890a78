// Package main hosts the aurgen CLI entrypoint and command graph.
//
// The Cobra-based command tree turns saved AUR helper transcripts into
// reviewable install scripts: generate performs the conversion, list shows
// pending transcripts, history renders the generation ledger, and config
// scaffolds configuration files. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
