// Package utils provides the tolerant value coercion shared by the catalog
// reader and the override parser.
//
// Every helper is a total function: a value that cannot be folded to the
// requested type comes back as nil ("absent") rather than an error. This
// keeps user-authored override files usable when they contain typos or
// placeholders such as "Unknown".
//
//	utils.Bool("Yes")     // true
//	utils.Bool("maybe")   // nil
//	utils.Int("unknown")  // nil
//	utils.Float("0.25")   // 0.25
package utils
