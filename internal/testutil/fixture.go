// Package testutil builds throwaway Reminders-shaped store files so
// locator, reader, and resolver tests never need the real group
// container.
package testutil

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// FixtureStore is a writable store file carrying the minimal
// Core-Data-shaped schema the readers consume.
type FixtureStore struct {
	t    *testing.T
	db   *sql.DB
	Path string
}

// MembershipEntry is one member→group link inside a list's membership
// payload, serialized with the field names the real blob uses.
type MembershipEntry struct {
	MemberID string `json:"memberID"`
	GroupID  string `json:"groupID"`
}

// NewCKIdentifier mints an opaque CK-style identifier.
func NewCKIdentifier() string {
	return uuid.NewString()
}

// CreateStore creates an empty fixture store named name under dir.
// The file and connection are cleaned up with the test.
func CreateStore(t *testing.T, dir, name string) *FixtureStore {
	t.Helper()

	path := filepath.Join(dir, name)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open fixture store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema := []string{
		`CREATE TABLE ZREMCDBASESECTION (
			Z_PK INTEGER PRIMARY KEY,
			ZCKIDENTIFIER TEXT,
			ZDISPLAYNAME TEXT
		)`,
		`CREATE TABLE ZREMCDREMINDER (
			Z_PK INTEGER PRIMARY KEY,
			ZCKIDENTIFIER TEXT,
			ZEXTERNALIDENTIFIER TEXT
		)`,
		`CREATE TABLE ZREMCDBASELIST (
			Z_PK INTEGER PRIMARY KEY,
			ZMEMBERSHIPSOFSECTIONSASDATA BLOB
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create fixture schema: %v", err)
		}
	}

	return &FixtureStore{t: t, db: db, Path: path}
}

// DefaultStore creates a fixture store with the primary naming
// convention (Data-<UUID>.sqlite) in a fresh temp directory and
// returns it together with its container directory.
func DefaultStore(t *testing.T) (*FixtureStore, string) {
	t.Helper()
	dir := t.TempDir()
	return CreateStore(t, dir, "Data-"+uuid.NewString()+".sqlite"), dir
}

// AddSection inserts one section row. Empty strings are stored as
// empty strings, not NULL; use AddSectionNulls for NULL columns.
func (f *FixtureStore) AddSection(ck, displayName string) {
	f.t.Helper()
	f.exec(`INSERT INTO ZREMCDBASESECTION (ZCKIDENTIFIER, ZDISPLAYNAME) VALUES (?, ?)`,
		ck, displayName)
}

// AddSectionNulls inserts a section row with NULL identifier and name.
func (f *FixtureStore) AddSectionNulls() {
	f.t.Helper()
	f.exec(`INSERT INTO ZREMCDBASESECTION (ZCKIDENTIFIER, ZDISPLAYNAME) VALUES (NULL, NULL)`)
}

// AddReminder inserts one reminder row. An empty externalID is stored
// as NULL, matching rows the sync layer has not yet assigned an
// external identifier.
func (f *FixtureStore) AddReminder(ck, externalID string) {
	f.t.Helper()
	if externalID == "" {
		f.exec(`INSERT INTO ZREMCDREMINDER (ZCKIDENTIFIER, ZEXTERNALIDENTIFIER) VALUES (?, NULL)`, ck)
		return
	}
	f.exec(`INSERT INTO ZREMCDREMINDER (ZCKIDENTIFIER, ZEXTERNALIDENTIFIER) VALUES (?, ?)`,
		ck, externalID)
}

// AddMemberships inserts one list row whose blob is a well-formed
// membership payload built from entries, in order.
func (f *FixtureStore) AddMemberships(entries ...MembershipEntry) {
	f.t.Helper()
	payload := struct {
		Memberships []MembershipEntry `json:"memberships"`
	}{Memberships: entries}
	if payload.Memberships == nil {
		payload.Memberships = []MembershipEntry{}
	}
	blob, err := json.Marshal(payload)
	if err != nil {
		f.t.Fatalf("marshal membership payload: %v", err)
	}
	f.AddRawListBlob(blob)
}

// AddRawListBlob inserts one list row with an arbitrary blob, for
// malformed-payload cases. A nil blob is stored as NULL.
func (f *FixtureStore) AddRawListBlob(blob []byte) {
	f.t.Helper()
	if blob == nil {
		f.exec(`INSERT INTO ZREMCDBASELIST (ZMEMBERSHIPSOFSECTIONSASDATA) VALUES (NULL)`)
		return
	}
	f.exec(`INSERT INTO ZREMCDBASELIST (ZMEMBERSHIPSOFSECTIONSASDATA) VALUES (?)`, blob)
}

// Exec runs an arbitrary statement against the fixture, for edge-case
// rows and schema mutations the typed helpers cannot express.
func (f *FixtureStore) Exec(query string, args ...any) {
	f.t.Helper()
	f.exec(query, args...)
}

// Close releases the writer connection so tests can exercise readers
// against a quiescent file.
func (f *FixtureStore) Close() {
	f.t.Helper()
	if err := f.db.Close(); err != nil {
		f.t.Fatalf("close fixture store: %v", err)
	}
}

func (f *FixtureStore) exec(query string, args ...any) {
	f.t.Helper()
	if _, err := f.db.Exec(query, args...); err != nil {
		f.t.Fatalf("fixture exec: %v", err)
	}
}
