package store

import (
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
	})
	return s
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func i64Ptr(i int64) *int64   { return &i }

func testRecord(path string) *ImageRecord {
	return &ImageRecord{
		Path:        path,
		Name:        "photo.jpg",
		Size:        1234,
		CreatedAt:   1700000000,
		ModifiedAt:  1700000100,
		PHash:       strPtr("a5a5a5a5a5a5a5a5"),
		ContentHash: strPtr("deadbeef"),
		Meta: &Metadata{
			Date:   i64Ptr(1650000000),
			Make:   strPtr("Canon"),
			Model:  strPtr("EOS R5"),
			Width:  intPtr(8192),
			Height: intPtr(5464),
		},
	}
}

func TestPutGetRoundtrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	want := testRecord("/photos/a.jpg")

	if err := s.Put(want); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, err := s.Get(want.Path, want.ModifiedAt, want.Size)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil for freshly stored record")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestGetValidityPair(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	rec := testRecord("/photos/a.jpg")
	if err := s.Put(rec); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	tests := []struct {
		name       string
		modifiedAt int64
		size       int64
		wantHit    bool
	}{
		{"exact match hits", rec.ModifiedAt, rec.Size, true},
		{"changed mtime misses", rec.ModifiedAt + 1, rec.Size, false},
		{"changed size misses", rec.ModifiedAt, rec.Size + 1, false},
		{"both changed misses", rec.ModifiedAt - 5, rec.Size * 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Get(rec.Path, tt.modifiedAt, tt.size)
			if err != nil {
				t.Fatalf("Get() error: %v", err)
			}
			if (got != nil) != tt.wantHit {
				t.Errorf("Get() hit = %v, want %v", got != nil, tt.wantHit)
			}
		})
	}
}

func TestGetUnknownPath(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	got, err := s.Get("/never/stored.png", 123, 456)
	if err != nil {
		t.Fatalf("Get() on unknown path should not error, got: %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %+v, want nil", got)
	}
}

func TestPutReplacesWholesale(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	first := testRecord("/photos/a.jpg")
	if err := s.Put(first); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	second := &ImageRecord{
		Path:       first.Path,
		Name:       first.Name,
		Size:       first.Size + 10,
		CreatedAt:  first.CreatedAt,
		ModifiedAt: first.ModifiedAt + 60,
		// No hashes, no metadata: the replacement must clear them.
	}
	if err := s.Put(second); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	if n, err := s.Count(); err != nil || n != 1 {
		t.Fatalf("Count() = %d, %v; want 1, nil", n, err)
	}

	got, err := s.Get(second.Path, second.ModifiedAt, second.Size)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil after replacement")
	}
	if got.PHash != nil || got.ContentHash != nil || got.Meta != nil {
		t.Errorf("replacement kept stale derived fields: %+v", got)
	}

	// The old validity pair must no longer hit.
	if stale, _ := s.Get(first.Path, first.ModifiedAt, first.Size); stale != nil {
		t.Error("old validity pair still hits after replacement")
	}
}

func TestPutRecordWithoutOptionalFields(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	rec := &ImageRecord{
		Path:       "/photos/plain.png",
		Name:       "plain.png",
		Size:       10,
		CreatedAt:  1,
		ModifiedAt: 2,
	}

	if err := s.Put(rec); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, err := s.Get(rec.Path, rec.ModifiedAt, rec.Size)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("Get() = %+v, want %+v", got, rec)
	}
}

func TestPrune(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	paths := []string{"/p/1.jpg", "/p/2.jpg", "/p/3.jpg"}
	for _, p := range paths {
		rec := testRecord(p)
		if err := s.Put(rec); err != nil {
			t.Fatalf("Put(%s) error: %v", p, err)
		}
	}

	valid := map[string]struct{}{"/p/2.jpg": {}}
	pruned, err := s.Prune(valid)
	if err != nil {
		t.Fatalf("Prune() error: %v", err)
	}
	if pruned != 2 {
		t.Errorf("Prune() = %d, want 2", pruned)
	}

	if n, _ := s.Count(); n != 1 {
		t.Errorf("Count() after prune = %d, want 1", n)
	}

	rec := testRecord("/p/2.jpg")
	if got, _ := s.Get(rec.Path, rec.ModifiedAt, rec.Size); got == nil {
		t.Error("surviving row was pruned")
	}
}

func TestPruneEmptySetRemovesEverything(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for _, p := range []string{"/p/1.jpg", "/p/2.jpg"} {
		if err := s.Put(testRecord(p)); err != nil {
			t.Fatalf("Put() error: %v", err)
		}
	}

	pruned, err := s.Prune(map[string]struct{}{})
	if err != nil {
		t.Fatalf("Prune() error: %v", err)
	}
	if pruned != 2 {
		t.Errorf("Prune() = %d, want 2", pruned)
	}
	if n, _ := s.Count(); n != 0 {
		t.Errorf("Count() = %d, want 0", n)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	rec := testRecord("/p/1.jpg")
	if err := s.Put(rec); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	if err := s.Delete(rec.Path); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if got, _ := s.Get(rec.Path, rec.ModifiedAt, rec.Size); got != nil {
		t.Error("record still present after Delete()")
	}

	// Deleting an absent row is not an error.
	if err := s.Delete("/p/never-existed.jpg"); err != nil {
		t.Errorf("Delete() on absent row errored: %v", err)
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if n, err := s.Count(); err != nil || n != 0 {
		t.Fatalf("Count() = %d, %v; want 0, nil", n, err)
	}

	for i, p := range []string{"/a.jpg", "/b.jpg", "/c.jpg"} {
		if err := s.Put(testRecord(p)); err != nil {
			t.Fatalf("Put() error: %v", err)
		}
		if n, _ := s.Count(); n != int64(i+1) {
			t.Errorf("Count() = %d, want %d", n, i+1)
		}
	}
}
