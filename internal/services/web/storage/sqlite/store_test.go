package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	webstorage "github.com/arenahq/arena/internal/services/web/storage"
	_ "modernc.org/sqlite"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "web-sessions.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store, path
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenRunsMigrationsAndIsReentrant(t *testing.T) {
	store, path := openTestStore(t)
	_ = store

	again, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	_ = again.Close()

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() { _ = sqlDB.Close() }()

	for _, table := range []string{"web_sessions", "web_session_slots", "schema_migrations"} {
		var name string
		err := sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestSessionRoundTripAndSlots(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond)

	session := webstorage.Session{
		ID:          "sess-1",
		UserID:      "user-1",
		Username:    "ace",
		Email:       "ace@example.com",
		Role:        "admin",
		AccessToken: "tok",
		ExpiresAt:   expires,
	}
	if err := store.PutSession(ctx, session); err != nil {
		t.Fatalf("put session: %v", err)
	}
	got, err := store.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Username != "ace" || got.Role != "admin" || !got.ExpiresAt.Equal(expires) || !got.SignedIn() {
		t.Fatalf("session = %+v", got)
	}

	if err := store.PutSlot(ctx, "sess-1", "cart", []byte(`{"items":[]}`)); err != nil {
		t.Fatalf("put slot: %v", err)
	}
	if err := store.PutSlot(ctx, "sess-1", "cart", []byte(`{"items":[1]}`)); err != nil {
		t.Fatalf("overwrite slot: %v", err)
	}
	payload, ok, err := store.GetSlot(ctx, "sess-1", "cart")
	if err != nil || !ok || string(payload) != `{"items":[1]}` {
		t.Fatalf("get slot = %q, %v, %v", payload, ok, err)
	}

	if err := store.DeleteSlot(ctx, "sess-1", "cart"); err != nil {
		t.Fatalf("delete slot: %v", err)
	}
	if _, ok, _ := store.GetSlot(ctx, "sess-1", "cart"); ok {
		t.Fatal("expected deleted slot to be missing")
	}
}

func TestDeleteSessionCascadesSlots(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if err := store.PutSession(ctx, webstorage.Session{ID: "sess-1", ExpiresAt: time.Now().Add(time.Hour)}); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if err := store.PutSlot(ctx, "sess-1", "checkout", []byte(`{}`)); err != nil {
		t.Fatalf("put slot: %v", err)
	}
	if err := store.DeleteSession(ctx, "sess-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := store.GetSession(ctx, "sess-1"); !errors.Is(err, webstorage.ErrNotFound) {
		t.Fatalf("get deleted session err = %v", err)
	}
	if _, ok, _ := store.GetSlot(ctx, "sess-1", "checkout"); ok {
		t.Fatal("expected slot to cascade")
	}
}

func TestExpiredSessionsAreHiddenAndPurged(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	if err := store.PutSession(ctx, webstorage.Session{ID: "old", ExpiresAt: now.Add(-time.Minute)}); err != nil {
		t.Fatalf("put old: %v", err)
	}
	if err := store.PutSession(ctx, webstorage.Session{ID: "fresh", ExpiresAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("put fresh: %v", err)
	}
	if _, err := store.GetSession(ctx, "old"); !errors.Is(err, webstorage.ErrNotFound) {
		t.Fatalf("expired session err = %v", err)
	}

	purged, err := store.PurgeExpired(ctx, now)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if purged != 1 {
		t.Fatalf("purged = %d, want 1", purged)
	}
	if _, err := store.GetSession(ctx, "fresh"); err != nil {
		t.Fatalf("fresh session: %v", err)
	}
}

func TestPutRejectsBlankIdentifiers(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if err := store.PutSession(ctx, webstorage.Session{}); err == nil {
		t.Fatal("expected blank session id error")
	}
	if err := store.PutSlot(ctx, "", "cart", nil); err == nil {
		t.Fatal("expected blank slot session error")
	}
}
