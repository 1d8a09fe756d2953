// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

package state

import (
	"sync"
	"testing"
)

func TestSessionMailbox(t *testing.T) {
	m := &sessionMailbox{}

	if _, ok := m.Get(); ok {
		t.Fatalf("expected empty mailbox")
	}

	m.Set(Session{UserID: 1, Username: "alice", Theme: "dark"})
	got, ok := m.Get()
	if !ok || got.Username != "alice" || got.UserID != 1 {
		t.Fatalf("expected stored session back, got %+v ok=%v", got, ok)
	}

	// The mailbox hands out copies; mutating one does not affect the stored
	// value.
	got.Username = "mallory"
	again, _ := m.Get()
	if again.Username != "alice" {
		t.Fatalf("stored session was mutated through a copy")
	}

	m.Set(Session{UserID: 2, Username: "bob"})
	got, _ = m.Get()
	if got.UserID != 2 {
		t.Fatalf("Set did not overwrite, got %+v", got)
	}

	m.Clear()
	if _, ok := m.Get(); ok {
		t.Fatalf("expected empty mailbox after Clear")
	}
}

func TestSessionMailbox_Concurrent(t *testing.T) {
	m := &sessionMailbox{}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			m.Set(Session{UserID: n})
			_, _ = m.Get()
		}(i)
	}
	wg.Wait()
	if _, ok := m.Get(); !ok {
		t.Fatalf("expected a session after concurrent writes")
	}
}
