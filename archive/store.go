package archive

import "database/sql"
import "encoding/json"
import "time"

import _ "modernc.org/sqlite"

// Store persists entries and fragments in a SQLite database so archived
// artifacts survive process exit.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	entry_id     TEXT PRIMARY KEY,
	content_hash TEXT NOT NULL,
	content_type TEXT NOT NULL,
	metadata     TEXT NOT NULL,
	created_at   INTEGER NOT NULL,
	expiration   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS fragments (
	fragment_id TEXT PRIMARY KEY,
	entry_id    TEXT NOT NULL,
	idx         INTEGER NOT NULL,
	total       INTEGER NOT NULL,
	position    INTEGER NOT NULL,
	overlap     REAL NOT NULL,
	data        TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS fragments_entry ON fragments(entry_id);
`

// OpenStore opens or creates the archive database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveEntry writes an entry and its fragments in one transaction.
func (s *Store) SaveEntry(entry *Entry, fragments []Fragment) error {
	meta, err := json.Marshal(entry.Metadata)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var expiration int64
	if entry.Expiration != nil {
		expiration = entry.Expiration.Unix()
	}

	_, err = tx.Exec(
		`INSERT OR REPLACE INTO entries (entry_id, content_hash, content_type, metadata, created_at, expiration)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.ContentHash, entry.ContentType, string(meta),
		entry.CreatedAt.Unix(), expiration,
	)
	if err != nil {
		return err
	}

	for _, frag := range fragments {
		_, err = tx.Exec(
			`INSERT OR REPLACE INTO fragments (fragment_id, entry_id, idx, total, position, overlap, data)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			frag.ID, frag.EntryID, frag.Index, frag.Total, frag.Offset, frag.Overlap, frag.Data,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadEntry reads an entry and its fragments back, sorted by index.
func (s *Store) LoadEntry(entryID string) (*Entry, []Fragment, error) {
	row := s.db.QueryRow(
		`SELECT content_hash, content_type, metadata, created_at, expiration
		 FROM entries WHERE entry_id = ?`, entryID)

	var entry = Entry{ID: entryID}
	var meta string
	var createdAt, expiration int64
	if err := row.Scan(&entry.ContentHash, &entry.ContentType, &meta, &createdAt, &expiration); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, ErrEntryNotFound
		}
		return nil, nil, err
	}
	if err := json.Unmarshal([]byte(meta), &entry.Metadata); err != nil {
		return nil, nil, err
	}
	entry.CreatedAt = time.Unix(createdAt, 0).UTC()
	if expiration != 0 {
		expires := time.Unix(expiration, 0).UTC()
		entry.Expiration = &expires
	}

	rows, err := s.db.Query(
		`SELECT fragment_id, idx, total, position, overlap, data
		 FROM fragments WHERE entry_id = ? ORDER BY idx`, entryID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var fragments []Fragment
	for rows.Next() {
		frag := Fragment{EntryID: entryID}
		if err := rows.Scan(&frag.ID, &frag.Index, &frag.Total, &frag.Offset, &frag.Overlap, &frag.Data); err != nil {
			return nil, nil, err
		}
		fragments = append(fragments, frag)
		entry.FragmentIDs = append(entry.FragmentIDs, frag.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return &entry, fragments, nil
}

// Status reports entry and fragment counts of the persistent archive
// grouped by content type.
func (s *Store) Status() (Status, error) {
	status := Status{
		Name:   s.path,
		ByType: make(map[string]int),
	}

	rows, err := s.db.Query(`SELECT content_type, COUNT(*) FROM entries GROUP BY content_type`)
	if err != nil {
		return Status{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var contentType string
		var count int
		if err := rows.Scan(&contentType, &count); err != nil {
			return Status{}, err
		}
		status.ByType[contentType] = count
		status.Entries += count
	}
	if err := rows.Err(); err != nil {
		return Status{}, err
	}

	row := s.db.QueryRow(`SELECT COUNT(*), COALESCE(AVG(overlap), 0) FROM fragments`)
	if err := row.Scan(&status.Fragments, &status.OverlapRate); err != nil {
		return Status{}, err
	}

	return status, nil
}

// EntryIDs lists all stored entry identifiers.
func (s *Store) EntryIDs() ([]string, error) {
	rows, err := s.db.Query(`SELECT entry_id FROM entries ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
