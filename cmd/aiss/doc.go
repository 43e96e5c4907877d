// Package main hosts the aiss CLI entrypoint and command graph.
//
// The Cobra command tree turns a free-text description into a rendered
// record (query, batch), renders stored or hand-written records (render,
// history show), lists the known formats and scaffolds configuration. It
// centralizes configuration loading, logger setup and collaborator wiring so
// subcommands only deal with input and output.
package main
