// Package archive provides fragment-based artifact storage.
//
// This package compresses an artifact, base64-encodes the result and
// slices it into overlapping fragments that can be reassembled exactly and
// verified against the stored content hash. It supports:
//   - Deterministic content-addressed entry identifiers
//   - Offset-exact reconstruction with an overlap-scan fallback
//   - SHA-512 integrity verification of every reconstruction
//   - Half-precision packing of audio sample vectors before archiving
//   - A SQLite-backed store so entries survive process exit
package archive
