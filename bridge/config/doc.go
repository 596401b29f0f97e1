// Package config defines the bridge configuration and loads it from a local
// path or any URL supported by github.com/viant/afs.
package config
