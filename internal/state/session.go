// Copyright (c) 2026 Formkeeper Team
// Formkeeper - service contract record keeper
// This source code is licensed under the MIT license found in the LICENSE file.

// package state holds transient per-process session state. The logged-in
// user travels as an explicit Session value; the mailbox below only bridges
// the gap between a login and the next command in the same process.
package state

import "sync"

// Session identifies the current operator and their appearance preference.
// It is passed explicitly to consumers that need it; there is no ambient
// current-user global.
type Session struct {
	UserID   int
	Username string
	Theme    string
}

// CurrentSession is a concurrency-safe mailbox for the active session.
var CurrentSession = &sessionMailbox{}

type sessionMailbox struct {
	value *Session
	mu    sync.RWMutex
}

// Set stores a copy of the session, overwriting any existing value.
func (m *sessionMailbox) Set(s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := s
	m.value = &cp
}

// Get retrieves a copy of the session and whether one is set.
func (m *sessionMailbox) Get() (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.value == nil {
		return Session{}, false
	}
	return *m.value, true
}

// Clear removes the stored session.
func (m *sessionMailbox) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = nil
}
