// Package language holds the fixed list of language codes a lookup table can
// be generated and served for.
//
// English ("en") is the fallback for every table load: when the table for the
// active language is missing or unreadable the English table is used instead.
package language
