package store

import (
	"context"
	"database/sql"

	"golang.org/x/text/unicode/norm"
)

// Sections returns the section catalog: CK identifier → display name.
//
// Best-effort: a failed query yields an empty map, and rows missing
// either column or carrying an empty identifier are skipped. Display
// names are NFC-normalized because Core Data persists decomposed
// UTF-8.
func (s *Store) Sections(ctx context.Context) map[string]string {
	sections := make(map[string]string)

	rows, err := s.db.QueryContext(ctx, `
		SELECT ZCKIDENTIFIER, ZDISPLAYNAME
		FROM ZREMCDBASESECTION
	`)
	if err != nil {
		return sections
	}
	defer rows.Close()

	for rows.Next() {
		var ck, name sql.NullString
		if err := rows.Scan(&ck, &name); err != nil {
			continue
		}
		if !ck.Valid || !name.Valid || ck.String == "" {
			continue
		}
		sections[ck.String] = norm.NFC.String(name.String)
	}
	// A mid-iteration error keeps whatever was already scanned.
	_ = rows.Err()

	return sections
}

// ReminderExternalIDs returns CK identifier → external calendar-item
// identifier for every reminder that has one.
//
// Best-effort with the same skip policy as Sections.
func (s *Store) ReminderExternalIDs(ctx context.Context) map[string]string {
	external := make(map[string]string)

	rows, err := s.db.QueryContext(ctx, `
		SELECT ZCKIDENTIFIER, ZEXTERNALIDENTIFIER
		FROM ZREMCDREMINDER
		WHERE ZEXTERNALIDENTIFIER IS NOT NULL
	`)
	if err != nil {
		return external
	}
	defer rows.Close()

	for rows.Next() {
		var ck, ext sql.NullString
		if err := rows.Scan(&ck, &ext); err != nil {
			continue
		}
		if !ck.Valid || !ext.Valid || ck.String == "" || ext.String == "" {
			continue
		}
		external[ck.String] = ext.String
	}
	_ = rows.Err()

	return external
}

// SectionMemberships decodes every list's membership blob and combines
// the results: reminder CK identifier → section CK identifier.
//
// A list whose blob is absent or malformed contributes nothing; later
// entries overwrite earlier ones for the same reminder, in row then
// entry order.
func (s *Store) SectionMemberships(ctx context.Context) map[string]string {
	memberships := make(map[string]string)

	rows, err := s.db.QueryContext(ctx, `
		SELECT ZMEMBERSHIPSOFSECTIONSASDATA
		FROM ZREMCDBASELIST
		WHERE ZMEMBERSHIPSOFSECTIONSASDATA IS NOT NULL
	`)
	if err != nil {
		return memberships
	}
	defer rows.Close()

	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			continue
		}
		pairs, ok := decodeMemberships(blob)
		if !ok {
			continue
		}
		for _, p := range pairs {
			memberships[p.Reminder] = p.Section
		}
	}
	_ = rows.Err()

	return memberships
}
