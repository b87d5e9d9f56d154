// Package server holds the HTTP server configuration of the local lookup API.
//
// The API exposes the resolver to editor integrations and scripts running
// on the same machine, so the listener binds to loopback unless configured
// otherwise.
//
// # Configuration
//
// The Config struct defines the bind host, the port and the optional API key.
//
// # Usage
//
// This package is embedded by core/config and read by the start command.
package server
