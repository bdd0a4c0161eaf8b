package assets

import (
	"fmt"
	"time"
)

// ArchiveKey is the fixed route key of the downloadable zip archive.
const ArchiveKey = "/gallery.zip"

// FullKey returns the route key of an original image, e.g. "/a.jpg".
func FullKey(fileName string) string {
	return "/" + fileName
}

// PreviewKey returns the route key of a preview, e.g. "/previews/a.webp".
func PreviewKey(displayName, ext string) string {
	return "/previews/" + displayName + "." + ext
}

// Asset is one immutable byte buffer with its content type.
type Asset struct {
	Data        []byte
	ContentType string
}

// Entry is one row of the presentation list, in original scan order.
type Entry struct {
	DisplayName string
	PreviewKey  string
	FullKey     string
}

// Stats summarizes the build that produced a snapshot.
type Stats struct {
	Scanned       int
	Succeeded     int
	Failed        int
	Duration      time.Duration
	PreviewFormat string
}

// Table accumulates assets during the build phase. It has a single writer
// (the result aggregator) and must be frozen before any concurrent reads.
type Table struct {
	assets map[string]Asset
	list   []Entry
	frozen bool
}

// NewTable returns an empty, mutable asset table.
func NewTable() *Table {
	return &Table{assets: make(map[string]Asset)}
}

// Put inserts one asset under its route key. Keys derive from filenames
// that are unique per directory, so a duplicate key or a write after
// Freeze is a logic bug and panics.
func (t *Table) Put(key string, a Asset) {
	if t.frozen {
		panic("assets: Put after Freeze")
	}
	if _, exists := t.assets[key]; exists {
		panic(fmt.Sprintf("assets: duplicate route key %q", key))
	}
	t.assets[key] = a
}

// AddEntry appends one presentation list row. Rows must be added in
// original scan order.
func (t *Table) AddEntry(e Entry) {
	if t.frozen {
		panic("assets: AddEntry after Freeze")
	}
	t.list = append(t.list, e)
}

// Freeze transitions the table into an immutable snapshot. The transition
// is one-way; the table rejects all writes afterwards, and the snapshot is
// safe for unsynchronized concurrent reads.
func (t *Table) Freeze(stats Stats) *Snapshot {
	if t.frozen {
		panic("assets: Freeze called twice")
	}
	t.frozen = true
	return &Snapshot{
		assets: t.assets,
		list:   t.list,
		stats:  stats,
		frozen: time.Now(),
	}
}

// Snapshot is the frozen gallery handed to the serving layer. It is never
// mutated after construction, so any number of readers may query it
// concurrently without locking.
type Snapshot struct {
	assets map[string]Asset
	list   []Entry
	stats  Stats
	frozen time.Time
}

// Get looks up one asset by route key.
func (s *Snapshot) Get(key string) (Asset, bool) {
	a, ok := s.assets[key]
	return a, ok
}

// Entries returns the presentation list in original scan order. Callers
// must not modify the returned slice.
func (s *Snapshot) Entries() []Entry {
	return s.list
}

// Len returns the number of assets in the table.
func (s *Snapshot) Len() int {
	return len(s.assets)
}

// Stats returns the build summary recorded at freeze time.
func (s *Snapshot) Stats() Stats {
	return s.stats
}

// FrozenAt returns the time the table was frozen.
func (s *Snapshot) FrozenAt() time.Time {
	return s.frozen
}
