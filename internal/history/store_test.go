package history

import (
	"testing"
	"time"
)

func TestStore(t *testing.T) {
	store, err := NewStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	id1, err := store.Add(Entry{
		Trigger:   "load",
		Intrinsic: "600px",
		Width:     "240px",
		Left:      "0px",
		Expr:      "calc(600px - 240px - 0px)",
		Resolved:  true,
		Px:        360,
		ViewportW: 1280,
		ViewportH: 800,
		Timestamp: time.Now().Add(-time.Minute),
	})
	if err != nil {
		t.Fatal(err)
	}
	if id1 == 0 {
		t.Error("expected non-zero ID")
	}

	id2, err := store.Add(Entry{
		Trigger:   "transitionend",
		Intrinsic: "600px",
		Width:     "240px",
		Left:      "-240px",
		Expr:      "calc(600px - 240px - -240px)",
		Resolved:  true,
		Px:        600,
		ViewportW: 1280,
		ViewportH: 800,
		Timestamp: time.Now(),
	})
	if err != nil {
		t.Fatal(err)
	}

	entries, err := store.List(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Most recent first
	if entries[0].ID != id2 {
		t.Errorf("expected most recent first, got id %d", entries[0].ID)
	}
	if entries[0].Px != 600 || !entries[0].Resolved {
		t.Errorf("round trip: %+v", entries[0])
	}

	results, err := store.Search("transitionend")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 search result, got %d", len(results))
	}

	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	entries, err = store.List(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty store after clear, got %d", len(entries))
	}
}
