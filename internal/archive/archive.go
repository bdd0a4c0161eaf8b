package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Builder incrementally serializes a zip archive from ordered (name, bytes)
// pairs. It has a single writer, is not safe for concurrent use, and is
// finalized exactly once.
type Builder struct {
	buf       bytes.Buffer
	zw        *zip.Writer
	names     map[string]bool
	finalized bool
}

// NewBuilder returns an empty archive builder.
func NewBuilder() *Builder {
	b := &Builder{names: make(map[string]bool)}
	b.zw = zip.NewWriter(&b.buf)
	return b
}

// Append writes one archive entry. Entry names must be unique; they come
// from filenames that are unique within one directory, so a duplicate or an
// append after Finalize is a logic bug and panics rather than corrupting
// the archive silently.
//
// JPEG payloads are already entropy-coded, so entries are stored rather
// than deflated.
func (b *Builder) Append(name string, data []byte) error {
	if b.finalized {
		panic("archive: Append after Finalize")
	}
	if b.names[name] {
		panic(fmt.Sprintf("archive: duplicate entry name %q", name))
	}
	b.names[name] = true

	w, err := b.zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Store,
	})
	if err != nil {
		return fmt.Errorf("creating archive entry %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing archive entry %s: %w", name, err)
	}
	return nil
}

// Len returns the number of entries appended so far.
func (b *Builder) Len() int {
	return len(b.names)
}

// Finalize writes the central directory and returns the finished archive
// bytes. It may be called at most once; a second call panics.
func (b *Builder) Finalize() ([]byte, error) {
	if b.finalized {
		panic("archive: Finalize called twice")
	}
	b.finalized = true

	if err := b.zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}
	return b.buf.Bytes(), nil
}
