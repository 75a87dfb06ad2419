// Package resolve joins the three record sets read from the Reminders
// store into the final mapping: external calendar-item identifier →
// containing section display name.
//
// The public entry points are total. A missing container, an unopenable
// store, or any failed read degrades to an empty mapping; callers never
// see an error. The mapping is an opportunistic enrichment — the
// reminders themselves come from elsewhere and must not be blocked by
// this lookup failing.
package resolve

import (
	"context"
	"time"

	"github.com/roach88/remindex/internal/locate"
	"github.com/roach88/remindex/internal/store"
)

// Options narrows where and how the resolution looks. The zero value
// means the conventional group container and default busy-wait bound.
type Options struct {
	// Container overrides the store container directory.
	Container string
	// StoreFile pins an exact store file, bypassing the locator.
	StoreFile string
	// BusyTimeout overrides store.DefaultBusyTimeout when positive.
	BusyTimeout time.Duration
}

// ExternalSections resolves the mapping from the conventional Reminders
// group container. It always returns a usable map, possibly empty.
func ExternalSections() map[string]string {
	return ExternalSectionsWith(Options{})
}

// ExternalSectionsWith is ExternalSections with explicit options.
func ExternalSectionsWith(opts Options) map[string]string {
	path := opts.StoreFile
	if path == "" {
		container := opts.Container
		if container == "" {
			container = locate.DefaultContainer()
		}
		var ok bool
		if path, ok = locate.StoreFile(container); !ok {
			return map[string]string{}
		}
	}

	busy := opts.BusyTimeout
	if busy <= 0 {
		busy = store.DefaultBusyTimeout
	}

	s, err := store.OpenTimeout(path, busy)
	if err != nil {
		return map[string]string{}
	}
	defer s.Close()

	ctx := context.Background()

	sections := s.Sections(ctx)
	// No sections means no membership can resolve; skip the remaining
	// two reads outright.
	if len(sections) == 0 {
		return map[string]string{}
	}

	external := s.ReminderExternalIDs(ctx)
	memberships := s.SectionMemberships(ctx)

	return Join(sections, external, memberships)
}

// Join combines the section catalog, the reminder identity map, and
// the membership map into the result mapping. Pure: no I/O, no
// ordering guarantees. Pairs that do not fully resolve on both sides
// are dropped silently.
func Join(sections, external, memberships map[string]string) map[string]string {
	result := make(map[string]string)
	for reminderCK, sectionCK := range memberships {
		name, ok := sections[sectionCK]
		if !ok {
			continue
		}
		ext, ok := external[reminderCK]
		if !ok {
			continue
		}
		result[ext] = name
	}
	return result
}
