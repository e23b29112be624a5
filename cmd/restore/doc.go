// Command restore reconstructs an archived entry back into a file.
//
// This tool loads an entry's fragments from the archive database,
// reassembles them, verifies the result against the stored SHA-512 content
// hash and writes it out. Entries archived from WAV files are unpacked
// from half precision and written as WAV at their original sample rate.
//
// Usage:
//
//	restore <archive_db> <entry_id> <output_file>
package main
