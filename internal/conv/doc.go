// Package conv holds value conversion helpers shared by the bridge: typed
// decoding of normalized tool results, argument map copies and pointer
// helpers for optional protocol fields.
package conv
