package audit

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nutvale/admin-gateway/pkg/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := NewStore(db, logger.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	store.Record(ctx, Entry{ID: "a1", Actor: "meera", Method: "POST", Path: "/api/products", Status: 201, At: base})
	store.Record(ctx, Entry{ID: "a2", Actor: "meera", Method: "DELETE", Path: "/api/coupons/c1", Status: 200, At: base.Add(time.Minute)})
	store.Record(ctx, Entry{ID: "a3", Actor: "raj", Method: "PUT", Path: "/api/orders/o1/status", Status: 200, At: base.Add(2 * time.Minute)})

	entries, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	// Newest first.
	if entries[0].ID != "a3" || entries[2].ID != "a1" {
		t.Errorf("order = %s, %s, %s", entries[0].ID, entries[1].ID, entries[2].ID)
	}
	if entries[0].Actor != "raj" || entries[0].Method != "PUT" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
}

func TestRecentLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		store.Record(ctx, Entry{
			ID:     string(rune('a' + i)),
			Actor:  "meera",
			Method: "POST",
			Path:   "/api/products",
			Status: 200,
			At:     time.Now().Add(time.Duration(i) * time.Second),
		})
	}

	entries, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}
