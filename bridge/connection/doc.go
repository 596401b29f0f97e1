// Package connection owns the lifecycle of the single connection to the
// subprocess-hosted MCP tool server: lazy start on first use, one
// establishment attempt in flight at a time, and reset on failure so that a
// later call can retry.
package connection
