// Package locale turns the per-language locale files into generated item
// tables.
//
// Locale files are flat string tables keyed by "<id> <property>". Only keys
// made of exactly two space separated parts with a 24 character id are item
// keys; everything else is ignored. Display text is folded per ID:
//
//   - Nickname overwrites both Name and ShortName.
//   - Name and ShortName set their own field and fill the other while it is
//     still empty.
//
// Blank values are ignored. After folding, each ID found in the catalog is
// enriched (see package catalog) and records without any display name are
// dropped.
//
// # Build
//
// Builder.Run processes every *.json file of the source store and writes a
// table of the same name to the output store. A language whose table ends up
// empty is reported and no file is written.
package locale
