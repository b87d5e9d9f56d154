// Package models defines the records served by the resolver and written by
// the build step.
//
// An ItemRecord is keyed by a 24 character hexadecimal object ID. Only Name
// and ShortName are always present; every other field is a pointer so that
// "unknown" survives a round trip through the generated JSON tables.
package models
