// Package ids generates new object IDs and finds IDs inside free text.
//
// Generated IDs are rs/xid identifiers rendered as hex, which share the
// timestamp-first 12 byte layout of the IDs in the game data.
package ids
