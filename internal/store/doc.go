// Package store reads the Reminders app's private SQLite backing store.
//
// The store is owned and concurrently written by the Reminders sync
// daemon; this package opens it strictly read-only and never creates,
// migrates, or repairs anything. Three record sets are consumed:
//
//   - Sections: ZREMCDBASESECTION (ZCKIDENTIFIER, ZDISPLAYNAME)
//   - Reminders: ZREMCDREMINDER (ZCKIDENTIFIER, ZEXTERNALIDENTIFIER)
//   - Lists: ZREMCDBASELIST (ZMEMBERSHIPSOFSECTIONSASDATA), a JSON
//     blob enumerating which reminder belongs to which section
//
// The schema is undocumented and versioned by the owning app, so every
// read is best-effort: a failed query yields an empty map, a bad row
// or malformed blob is skipped, and nothing here ever aborts the
// caller. The only hard failure surface is Open itself.
//
// # Database Configuration
//
//   - mode=ro: never take write locks on a live store
//   - _busy_timeout=1500: absorb transient writer lock contention
//   - _mutex=no: skip connection-level mutexing the single-threaded
//     read passes do not need
package store
