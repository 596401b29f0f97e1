// Package bridge exposes the upstream MCP trading-data tool server to a
// conversational front-end. Its Service invokes tools by application
// function name, normalizes every response into a Result, lists the
// upstream catalog and, when structured dispatch is unavailable, infers a
// tool call from free text through ordered keyword rules.
package bridge
