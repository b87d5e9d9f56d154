package server

import "net"

// Config holds configuration for the local lookup API.
type Config struct {
	// Host is the interface to bind. The API is meant for local tools, so it
	// defaults to loopback.
	Host string `mapstructure:"host" default:"127.0.0.1" validate:"required"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8085" validate:"required,numeric"`
	// ApiKey is the secret key required to access the API. Empty disables
	// authentication.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Address returns the host:port the server listens on.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsLoopback reports whether the server only accepts local connections.
func (c Config) IsLoopback() bool {
	if c.Host == "localhost" {
		return true
	}
	ip := net.ParseIP(c.Host)
	return ip != nil && ip.IsLoopback()
}
