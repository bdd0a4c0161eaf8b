package assets

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"picwall/internal/mediatypes"
)

func TestRouteKeys(t *testing.T) {
	if got := FullKey("a.jpg"); got != "/a.jpg" {
		t.Errorf("FullKey = %q, want /a.jpg", got)
	}
	if got := PreviewKey("a", "webp"); got != "/previews/a.webp" {
		t.Errorf("PreviewKey = %q, want /previews/a.webp", got)
	}
	if ArchiveKey != "/gallery.zip" {
		t.Errorf("ArchiveKey = %q", ArchiveKey)
	}
}

func TestTablePutAndGet(t *testing.T) {
	tbl := NewTable()
	tbl.Put("/a.jpg", Asset{Data: []byte("full"), ContentType: mediatypes.ContentTypeJPEG})
	tbl.Put("/previews/a.webp", Asset{Data: []byte("preview"), ContentType: mediatypes.ContentTypeWebP})
	tbl.AddEntry(Entry{DisplayName: "a", PreviewKey: "/previews/a.webp", FullKey: "/a.jpg"})

	snap := tbl.Freeze(Stats{Scanned: 1, Succeeded: 1})

	a, ok := snap.Get("/a.jpg")
	if !ok {
		t.Fatal("expected /a.jpg in table")
	}
	if !bytes.Equal(a.Data, []byte("full")) || a.ContentType != mediatypes.ContentTypeJPEG {
		t.Errorf("unexpected asset %+v", a)
	}

	if _, ok := snap.Get("/missing.jpg"); ok {
		t.Error("lookup of absent key should miss, not succeed")
	}

	if snap.Len() != 2 {
		t.Errorf("Len() = %d, want 2", snap.Len())
	}
	if got := snap.Entries(); len(got) != 1 || got[0].DisplayName != "a" {
		t.Errorf("Entries() = %+v", got)
	}
	if snap.Stats().Succeeded != 1 {
		t.Errorf("Stats() = %+v", snap.Stats())
	}
	if snap.FrozenAt().IsZero() || snap.FrozenAt().After(time.Now()) {
		t.Errorf("FrozenAt() = %v", snap.FrozenAt())
	}
}

func TestDuplicateKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate route key")
		}
	}()

	tbl := NewTable()
	tbl.Put("/a.jpg", Asset{Data: []byte("one")})
	tbl.Put("/a.jpg", Asset{Data: []byte("two")})
}

func TestPutAfterFreezePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on Put after Freeze")
		}
	}()

	tbl := NewTable()
	tbl.Freeze(Stats{})
	tbl.Put("/late.jpg", Asset{})
}

func TestFreezeTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on second Freeze")
		}
	}()

	tbl := NewTable()
	tbl.Freeze(Stats{})
	tbl.Freeze(Stats{})
}

func TestSnapshotConcurrentReads(t *testing.T) {
	tbl := NewTable()
	tbl.Put("/a.jpg", Asset{Data: []byte("payload"), ContentType: mediatypes.ContentTypeJPEG})
	snap := tbl.Freeze(Stats{})

	// Many readers hammering the frozen table must always observe
	// identical bytes. Run with -race to verify the absence of writes.
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				a, ok := snap.Get("/a.jpg")
				if !ok || string(a.Data) != "payload" {
					t.Error("concurrent read observed wrong data")
					return
				}
			}
		}()
	}
	wg.Wait()
}
