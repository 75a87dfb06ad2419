package store

import "encoding/json"

// Membership links one reminder to the section that contains it, both
// sides keyed by CK identifier.
type Membership struct {
	Reminder string
	Section  string
}

// membershipPayload mirrors the JSON blob Reminders nests in
// ZREMCDBASELIST.ZMEMBERSHIPSOFSECTIONSASDATA. The format is an
// internal detail of the owning app with no published schema; only the
// fields consumed here are declared.
type membershipPayload struct {
	Memberships []membershipEntry `json:"memberships"`
}

type membershipEntry struct {
	MemberID string `json:"memberID"`
	GroupID  string `json:"groupID"`
}

// decodeMemberships parses one membership blob.
//
// ok=false means the whole payload is unusable — empty, not JSON, the
// wrong shape, or missing the top-level memberships field — and the
// row contributes nothing. Within a usable payload, entries missing
// either identifier are skipped individually while their siblings are
// kept. Order is preserved so that callers get last-write-wins
// semantics when accumulating.
func decodeMemberships(blob []byte) ([]Membership, bool) {
	if len(blob) == 0 {
		return nil, false
	}

	var payload membershipPayload
	if err := json.Unmarshal(blob, &payload); err != nil {
		return nil, false
	}
	// Distinguishes {"memberships": []} from a payload without the
	// field at all; the latter is not the expected shape.
	if payload.Memberships == nil {
		return nil, false
	}

	var pairs []Membership
	for _, entry := range payload.Memberships {
		if entry.MemberID == "" || entry.GroupID == "" {
			continue
		}
		pairs = append(pairs, Membership{Reminder: entry.MemberID, Section: entry.GroupID})
	}
	return pairs, true
}
