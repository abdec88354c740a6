package web

import (
	"testing"
	"time"

	"github.com/presspilot/presspilot/internal/leads"
)

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore(time.Hour)
	defer store.Close()

	controller := leads.NewController(nil)
	id := store.Create(controller)

	if id == "" {
		t.Fatal("Expected non-empty session ID")
	}

	got, ok := store.Get(id)
	if !ok {
		t.Fatal("Expected session to be found")
	}
	if got != controller {
		t.Error("Expected the same controller back")
	}
}

func TestSessionStore_UnknownID(t *testing.T) {
	store := NewSessionStore(time.Hour)
	defer store.Close()

	if _, ok := store.Get("nope"); ok {
		t.Error("Expected unknown ID to miss")
	}
}

func TestSessionStore_DistinctIDs(t *testing.T) {
	store := NewSessionStore(time.Hour)
	defer store.Close()

	a := store.Create(leads.NewController(nil))
	b := store.Create(leads.NewController(nil))

	if a == b {
		t.Error("Expected distinct session IDs")
	}
	if store.Len() != 2 {
		t.Errorf("Expected 2 live sessions, got %d", store.Len())
	}
}
