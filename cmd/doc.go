// Package cmd implements the sub-commands that make up the tradebridge
// command-line interface.  Each file in this directory registers a single
// sub-command (list-tools, tool, exec, ask, serve).  The plumbing that is
// shared between commands such as configuration loading or service
// initialisation is located in shared.go.
package cmd
