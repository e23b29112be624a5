package archive

import "crypto/sha256"
import "encoding/hex"
import "encoding/json"
import "errors"
import "time"

var ErrEntryNotFound = errors.New("entryNotFound")

// Entry describes one archived artifact.
type Entry struct {
	ID          string            `json:"entry_id"`
	ContentHash string            `json:"content_hash"`
	ContentType string            `json:"content_type"`
	Metadata    map[string]string `json:"metadata"`
	FragmentIDs []string          `json:"fragment_ids"`
	CreatedAt   time.Time         `json:"created_at"`
	Expiration  *time.Time        `json:"expiration,omitempty"`
}

// Expired reports whether the entry has an expiration in the past.
func (e *Entry) Expired(now time.Time) bool {
	return e.Expiration != nil && now.After(*e.Expiration)
}

// Archive holds entries and their fragments in memory.
type Archive struct {
	Name        string
	OverlapRate float64

	entries   map[string]*Entry
	fragments map[string]Fragment
}

// NewArchive creates an empty in-memory archive.
func NewArchive(name string) *Archive {
	return &Archive{
		Name:        name,
		OverlapRate: DefaultOverlapRate,
		entries:     make(map[string]*Entry),
		fragments:   make(map[string]Fragment),
	}
}

// EntryID derives the content address of an artifact: the first 32 hex
// digits of the SHA-256 over content and metadata. Storing the same
// artifact twice yields the same entry.
func EntryID(content string, metadata map[string]string) string {
	meta, _ := json.Marshal(metadata)
	sum := sha256.Sum256(append([]byte(content+"_"), meta...))
	return hex.EncodeToString(sum[:])[:32]
}

// Put fragments an artifact and stores it, returning the entry. A
// zero expiration means the entry never expires.
func (a *Archive) Put(content, contentType string, metadata map[string]string, expiration time.Time) *Entry {
	entryID := EntryID(content, metadata)

	var expires *time.Time
	if !expiration.IsZero() {
		expires = &expiration
	}

	fragments := Split(content, entryID, a.OverlapRate)
	fragmentIDs := make([]string, len(fragments))
	for i, frag := range fragments {
		fragmentIDs[i] = frag.ID
		a.fragments[frag.ID] = frag
	}

	entry := &Entry{
		ID:          entryID,
		ContentHash: ContentHash(content),
		ContentType: contentType,
		Metadata:    metadata,
		FragmentIDs: fragmentIDs,
		CreatedAt:   time.Now().UTC(),
		Expiration:  expires,
	}
	a.entries[entryID] = entry
	return entry
}

// Get returns the entry under entryID, or nil when absent.
func (a *Archive) Get(entryID string) *Entry {
	return a.entries[entryID]
}

// Fragments returns the stored fragments of an entry sorted by index, or
// nil when the entry is absent.
func (a *Archive) Fragments(entryID string) []Fragment {
	entry, ok := a.entries[entryID]
	if !ok {
		return nil
	}
	fragments := make([]Fragment, 0, len(entry.FragmentIDs))
	for _, fragmentID := range entry.FragmentIDs {
		if frag, ok := a.fragments[fragmentID]; ok {
			fragments = append(fragments, frag)
		}
	}
	return fragments
}

// Reconstruct reassembles and verifies the artifact stored under entryID.
func (a *Archive) Reconstruct(entryID string) (string, error) {
	entry, ok := a.entries[entryID]
	if !ok {
		return "", ErrEntryNotFound
	}

	var fragments []Fragment
	for _, fragmentID := range entry.FragmentIDs {
		if frag, ok := a.fragments[fragmentID]; ok {
			fragments = append(fragments, frag)
		}
	}
	return Reconstruct(fragments, entry.ContentHash)
}

// Status summarizes the archive contents.
type Status struct {
	Name        string         `json:"archive_name"`
	Entries     int            `json:"total_entries"`
	Fragments   int            `json:"total_fragments"`
	OverlapRate float64        `json:"fragment_overlap_rate"`
	ByType      map[string]int `json:"entries_by_type"`
}

// Status reports entry and fragment counts grouped by content type.
func (a *Archive) Status() Status {
	byType := make(map[string]int)
	for _, entry := range a.entries {
		byType[entry.ContentType]++
	}
	return Status{
		Name:        a.Name,
		Entries:     len(a.entries),
		Fragments:   len(a.fragments),
		OverlapRate: a.OverlapRate,
		ByType:      byType,
	}
}
