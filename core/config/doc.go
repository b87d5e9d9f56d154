// Package config provides configuration management for the resolver.
//
// It uses Viper with defaults taken from `default` struct tags and
// environment variables mapped from nested keys (DATA_LANGUAGE ->
// data.language). A .env file in the working directory is loaded first.
//
// # Configuration Structure
//
//   - Server: bind host, port and API key of the local lookup API
//   - Log: logging level and format
//   - Data: active language, table directories and the table memo
//   - Build: catalog file, locale directory and output directory
//   - Workspace: override search root, file name, exclusions and workers
//
// Validate checks the loaded values with go-playground/validator; the
// `language` tag accepts only supported language codes.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
