// Package registry maps names to callbacks so that function nodes loaded from
// YAML can refer to Go code.
package registry
