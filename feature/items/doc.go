// Package items serves resolved object ID records.
//
// The Service holds two layers: the generated table of the active language
// (static) and the records collected from workspace override files
// (custom). Lookups consult the custom layer first. Both layers are
// published through atomic pointers and never modified afterwards, so
// lookups may run concurrently with a rescan or a language switch.
//
// # Language fallback
//
// Load reads `<lang>.json` from the table store. When it is missing or
// malformed the English table is used instead, and when that fails too the
// static layer is empty. Translation tables follow the same policy.
//
// # HTTP
//
//	GET  /items               known IDs
//	GET  /items/:id           record JSON
//	GET  /items/:id/text      record as plain text
//	GET  /translations/:key   UI label
//	PUT  /language/:code      switch language
//	POST /overrides/rescan    force a workspace rescan
//	GET  /diagnostics         counters
package items
