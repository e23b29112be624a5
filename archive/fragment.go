package archive

import "bytes"
import "compress/zlib"
import "crypto/sha256"
import "crypto/sha512"
import "encoding/base64"
import "encoding/hex"
import "errors"
import "fmt"
import "io"
import "sort"

// DefaultOverlapRate is the fraction of each fragment shared with its
// neighbor.
const DefaultOverlapRate = 0.35

// minFragmentSize is the smallest fragment payload in bytes.
const minFragmentSize = 256

var (
	ErrNoFragments  = errors.New("noFragments")
	ErrFragmentGap  = errors.New("fragmentGap")
	ErrHashMismatch = errors.New("hashMismatch")
)

// Fragment is one overlapping slice of a compressed artifact payload.
// Offset is the slice's absolute position in the encoded payload; a
// negative offset marks a fragment whose position was lost, forcing
// overlap scanning during reconstruction.
type Fragment struct {
	ID      string  `json:"fragment_id"`
	EntryID string  `json:"entry_id"`
	Data    string  `json:"data"`
	Index   int     `json:"index"`
	Total   int     `json:"total"`
	Offset  int     `json:"offset"`
	Overlap float64 `json:"overlap"`
}

// Split compresses content, base64-encodes it and slices the encoding
// into overlapping fragments. The fragment size is an eighth of the
// payload with a floor of 256 bytes.
func Split(content, entryID string, overlapRate float64) []Fragment {
	encoded := encode(content)

	size := len(encoded) / 8
	if size < minFragmentSize {
		size = minFragmentSize
	}
	// the slice position must advance by at least one byte per fragment
	overlap := int(float64(size) * overlapRate)
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size - 1
	}

	var fragments []Fragment
	for position, index := 0, 0; position < len(encoded); index++ {
		start := position - overlap
		if start < 0 {
			start = 0
		}
		end := position + size
		if end > len(encoded) {
			end = len(encoded)
		}

		data := encoded[start:end]
		sum := sha256.Sum256([]byte(fmt.Sprintf("%s_%d_%s", entryID, index, data)))

		fragments = append(fragments, Fragment{
			ID:      hex.EncodeToString(sum[:])[:24],
			EntryID: entryID,
			Data:    data,
			Index:   index,
			Offset:  start,
			Overlap: overlapRate,
		})

		position += size - overlap
	}

	for i := range fragments {
		fragments[i].Total = len(fragments)
	}
	return fragments
}

// Reconstruct reassembles the original content from fragments and
// verifies it against wantHash, the hex SHA-512 of the content. Pass an
// empty wantHash to skip verification.
func Reconstruct(fragments []Fragment, wantHash string) (string, error) {
	if len(fragments) == 0 {
		return "", ErrNoFragments
	}

	sorted := make([]Fragment, len(fragments))
	copy(sorted, fragments)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	var combined []byte
	for _, frag := range sorted {
		data := []byte(frag.Data)
		if frag.Offset < 0 {
			combined = append(combined, data[scanOverlap(combined, data):]...)
			continue
		}
		if frag.Offset > len(combined) {
			return "", ErrFragmentGap
		}
		if skip := len(combined) - frag.Offset; skip < len(data) {
			combined = append(combined, data[skip:]...)
		}
	}

	content, err := decode(string(combined))
	if err != nil {
		return "", err
	}

	if wantHash != "" && ContentHash(content) != wantHash {
		return "", ErrHashMismatch
	}
	return content, nil
}

// ContentHash returns the hex SHA-512 of content, the integrity check
// verified on every reconstruction.
func ContentHash(content string) string {
	sum := sha512.Sum512([]byte(content))
	return hex.EncodeToString(sum[:])
}

// scanOverlap finds the longest suffix of combined that prefixes data.
func scanOverlap(combined, data []byte) int {
	max := len(data)
	if len(combined) < max {
		max = len(combined)
	}
	for k := max; k > 0; k-- {
		if bytes.Equal(combined[len(combined)-k:], data[:k]) {
			return k
		}
	}
	return 0
}

func encode(content string) string {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write([]byte(content))
	zw.Close()
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decode(encoded string) (string, error) {
	compressed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", err
	}
	defer zr.Close()

	content, err := io.ReadAll(zr)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
