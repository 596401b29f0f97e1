// Package syncmap offers a small generic map guarded by a sync.RWMutex. It
// backs the tool name resolver whose aliases may be registered at runtime
// while lookups run on request goroutines.
package syncmap
