// Package assets holds the in-memory asset table of the gallery.
//
// The table goes through two phases. During the build it is mutable with
// exactly one writer. Freeze then converts it into a read-only Snapshot
// that the HTTP layer queries for the life of the process; the snapshot
// needs no synchronization because nothing writes to it after the freeze.
//
// Route keys are path-shaped strings: "/<file>" for originals,
// "/previews/<stem>.<ext>" for previews, and ArchiveKey for the zip.
package assets
