// Package frtext provides small French-text helpers: diacritic
// normalization and apostrophe/hyphen-aware word tokenization.
//
// Both helpers are pure functions over their input strings and are safe
// for concurrent use.
package frtext
