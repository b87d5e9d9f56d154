// Package overrides loads workspace-authored records from `.sptids` files.
//
// An override file maps IDs to per-language payloads:
//
//	{
//	  "507f1f77bcf86cd799439011": {
//	    "en": {"Name": "Rusty Key", "Type": "key", "Weight": "0.01"},
//	    "fr": {"Name": "Clé rouillée"}
//	  }
//	}
//
// Only the active language is read. Payload values are coerced leniently
// (see core/utils) and a record without Name is dropped on its own.
//
// # Rescans
//
// Watcher.Rescan walks the whole workspace, skipping hidden directories and
// DefaultExclude, parses every file concurrently and replaces the custom
// layer with the merged result. There is no incremental update: file
// changes, initial activation and language switches all trigger a full
// rescan.
//
// FSNotifier feeds fsnotify events into the watcher.
package overrides
