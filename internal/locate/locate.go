// Package locate finds the Reminders backing store file inside the
// app's group container.
//
// The container holds a rotating set of SQLite files: the live store
// (named Data-<UUID>.sqlite), plus stale and orphaned copies left
// behind by migrations. Selection is best-effort — prefer the newest
// readable Data-* file, fall back to the newest readable *.sqlite, and
// report nothing rather than an error when the container is missing or
// empty.
package locate

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	storePrefix = "Data-"
	storeSuffix = ".sqlite"
)

// FS is the filesystem surface the locator needs. It exists so store
// selection can be exercised against a synthetic directory listing
// without touching the real group container.
type FS interface {
	ReadDir(dir string) ([]os.DirEntry, error)
	Stat(path string) (os.FileInfo, error)
	// Readable reports whether the current process can open the file
	// for reading.
	Readable(path string) bool
}

// OSFS is the production FS backed by the os package.
type OSFS struct{}

func (OSFS) ReadDir(dir string) ([]os.DirEntry, error) { return os.ReadDir(dir) }
func (OSFS) Stat(path string) (os.FileInfo, error)     { return os.Stat(path) }

func (OSFS) Readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// DefaultContainer returns the conventional per-user Stores directory
// of the Reminders group container.
func DefaultContainer() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home,
		"Library", "Group Containers", "group.com.apple.reminders",
		"Container_v1", "Stores")
}

// StoreFile returns the best candidate store file under dir, or
// ok=false when no readable candidate exists. Failures to list or stat
// are treated as "none found", never as errors.
func StoreFile(dir string) (string, bool) {
	return StoreFileFS(OSFS{}, dir)
}

// StoreFileFS is StoreFile with an injectable filesystem.
func StoreFileFS(fsys FS, dir string) (string, bool) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return "", false
	}

	// Primary convention first: Data-*.sqlite.
	if path, ok := newestReadable(fsys, dir, entries, func(name string) bool {
		return strings.HasPrefix(name, storePrefix) && strings.HasSuffix(name, storeSuffix)
	}); ok {
		return path, true
	}

	// Fallback: any *.sqlite file.
	return newestReadable(fsys, dir, entries, func(name string) bool {
		return strings.HasSuffix(name, storeSuffix)
	})
}

// newestReadable picks the matching entry with the latest modification
// time among those the process can actually read. Ties are broken by
// listing order (last observed wins); callers must not depend on a
// specific winner among equal timestamps.
func newestReadable(fsys FS, dir string, entries []os.DirEntry, match func(string) bool) (string, bool) {
	var (
		best    string
		bestMod time.Time
		found   bool
	)
	for _, entry := range entries {
		if entry.IsDir() || !match(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := fsys.Stat(path)
		if err != nil {
			continue
		}
		if !fsys.Readable(path) {
			continue
		}
		if !found || !info.ModTime().Before(bestMod) {
			best = path
			bestMod = info.ModTime()
			found = true
		}
	}
	return best, found
}
