// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: Rejects requests whose X-API-Key header does not match the
//     configured key. An empty key disables the check.
//   - RayID: Tags every request with a UUID RayID, stored in the context
//     locals and echoed in the X-Ray-ID response header for tracing.
//
// Both are registered globally by the start command, RayID first.
package middleware
