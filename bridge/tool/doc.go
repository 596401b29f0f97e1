// Package tool maps application-level function identifiers onto the tool
// names understood by the upstream MCP server. The mapping is currently an
// identity for every known function but stays a first-class indirection so
// that either side can be renamed without touching callers.
package tool
