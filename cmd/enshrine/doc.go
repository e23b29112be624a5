// Command enshrine fragments a file and stores it in a SQLite archive.
//
// This tool compresses the input, slices it into overlapping fragments and
// writes the entry and its fragments to the archive database. WAV inputs
// are packed to half precision first, halving the archived payload; the
// sample rate is kept in the entry metadata for restoration.
//
// Usage:
//
//	enshrine <archive_db> <input_file>
//
// The entry identifier printed on success is the content address used by
// the restore tool.
package main
