package chat

import (
	"testing"
	"time"
)

func TestGetOrCreateMintsFreshID(t *testing.T) {
	store := NewSessionStore(0, 0)
	defer store.Stop()

	sess, id := store.GetOrCreate("")
	if id == "" {
		t.Fatal("expected a fresh session id")
	}
	if len(sess.Messages) != 0 {
		t.Errorf("expected empty history, got %d messages", len(sess.Messages))
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 session, got %d", store.Len())
	}
}

func TestGetOrCreateRoundTrip(t *testing.T) {
	store := NewSessionStore(0, 0)
	defer store.Stop()

	sess, id := store.GetOrCreate("")
	store.Append(sess, "user", "hello")

	again, sameID := store.GetOrCreate(id)
	if sameID != id {
		t.Errorf("id changed on lookup: %q vs %q", sameID, id)
	}
	if len(store.History(again)) != 1 {
		t.Errorf("expected 1 message after append, got %d", len(store.History(again)))
	}
}

func TestGetOrCreateUnknownIDCreatesNewSession(t *testing.T) {
	store := NewSessionStore(0, 0)
	defer store.Stop()

	_, id := store.GetOrCreate("never-seen-before")
	if id == "never-seen-before" {
		t.Error("unknown id must be replaced with a fresh one")
	}
}

func TestAppendDoesNotTouchTimestamp(t *testing.T) {
	store := NewSessionStore(0, 0)
	defer store.Stop()

	sess, _ := store.GetOrCreate("")
	before := sess.LastUpdated
	store.Append(sess, "user", "hello")
	if !sess.LastUpdated.Equal(before) {
		t.Error("Append must not bump LastUpdated")
	}

	store.Touch(sess)
	if !sess.LastUpdated.After(before) {
		t.Error("Touch must bump LastUpdated")
	}
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	store := NewSessionStore(24*time.Hour, 24*time.Hour)
	defer store.Stop()

	stale, _ := store.GetOrCreate("")
	_, freshID := store.GetOrCreate("")

	stale.LastUpdated = time.Now().Add(-25 * time.Hour)

	if n := store.Sweep(time.Now()); n != 1 {
		t.Fatalf("expected 1 eviction, got %d", n)
	}
	if _, id := store.GetOrCreate(freshID); id != freshID {
		t.Error("recent session should survive the sweep")
	}
}

func TestSweepIsIdempotent(t *testing.T) {
	store := NewSessionStore(24*time.Hour, 24*time.Hour)
	defer store.Stop()

	sess, _ := store.GetOrCreate("")
	sess.LastUpdated = time.Now().Add(-48 * time.Hour)

	now := time.Now()
	if n := store.Sweep(now); n != 1 {
		t.Fatalf("first sweep evicted %d, want 1", n)
	}
	if n := store.Sweep(now); n != 0 {
		t.Errorf("second sweep evicted %d, want 0", n)
	}
}

func TestEvictedIDProducesFreshSession(t *testing.T) {
	store := NewSessionStore(24*time.Hour, 24*time.Hour)
	defer store.Stop()

	sess, id := store.GetOrCreate("")
	store.Append(sess, "user", "hello")
	sess.LastUpdated = time.Now().Add(-48 * time.Hour)
	store.Sweep(time.Now())

	reborn, newID := store.GetOrCreate(id)
	if newID == id {
		t.Error("a reused id after eviction must be treated as unknown")
	}
	if len(reborn.Messages) != 0 {
		t.Errorf("expected empty history, got %d messages", len(reborn.Messages))
	}
}

func TestStopIsSafeToCallTwice(t *testing.T) {
	store := NewSessionStore(0, 0)
	store.Start()
	store.Stop()
	store.Stop()
}
