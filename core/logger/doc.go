// Package logger builds the zap logger shared by the CLI, the lookup API and
// the background workspace watcher.
//
// # Request Correlation
//
// WithRayID copies the ray_id set by the rayid middleware onto a child
// logger, so every line written while serving a lookup can be grouped.
//
// # Configuration
//
//   - Level: debug, info, warn or error, parsed with zapcore.ParseLevel.
//     debug also switches to zap's development config.
//   - Format: console (coloured levels, no stacktraces) or json.
//
// # Usage
//
//	log, err := logger.New(&logger.Config{Level: "info", Format: "json"})
//	if err != nil {
//	    return err
//	}
//	log.Info("Loaded language", zap.String("language", "en"))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Warn("Unknown id", zap.String("id", id))
package logger
