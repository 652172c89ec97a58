package client

import (
	"errors"
	"testing"

	"github.com/easyonboard/backend/internal/model"
)

func TestSyncStateMachineTransitions(t *testing.T) {
	sm := NewSyncStateMachine()

	allowed := []SyncTransition{
		{SyncStateLocalOnly, SyncStateSynced},
		{SyncStateRemoteOnly, SyncStateSynced},
		{SyncStateConflicted, SyncStateSynced},
		{SyncStateSynced, SyncStateConflicted},
		{SyncStateSynced, SyncStateLocalOnly},
		{SyncStateSynced, SyncStateRemoteOnly},
	}
	for _, tr := range allowed {
		if !sm.CanTransition(tr.From, tr.To) {
			t.Errorf("expected %s -> %s to be allowed", tr.From, tr.To)
		}
	}

	if sm.CanTransition(SyncStateSynced, SyncStateSynced) {
		t.Error("same-state transition should be rejected")
	}
	if sm.CanTransition(SyncStateLocalOnly, SyncStateRemoteOnly) {
		t.Error("local-only -> remote-only should be rejected")
	}

	err := sm.Transition(SyncStateLocalOnly, SyncStateRemoteOnly, "welcome")
	var invalid *InvalidSyncTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSyncTransitionError, got %v", err)
	}
}

func TestReconcile(t *testing.T) {
	remote := []model.Topic{
		{ID: "synced", Content: "same", Completed: true},
		{ID: "diverged", Content: "body", Completed: true},
		{ID: "server-side", Content: "new"},
	}
	cached := []model.Topic{
		{ID: "synced", Content: "same", Completed: true},
		{ID: "diverged", Content: "body", Completed: false},
		{ID: "offline-draft", Content: "draft"},
	}

	states := Reconcile(remote, cached)

	expected := map[string]SyncState{
		"synced":        SyncStateSynced,
		"diverged":      SyncStateConflicted,
		"server-side":   SyncStateRemoteOnly,
		"offline-draft": SyncStateLocalOnly,
	}
	for id, want := range expected {
		if got := states[id]; got != want {
			t.Errorf("state for %q: got %s, want %s", id, got, want)
		}
	}
	if len(states) != len(expected) {
		t.Fatalf("unexpected state count: %d", len(states))
	}
}
