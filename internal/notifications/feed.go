package notifications

import (
	"context"
	"sync"
)

// DefaultFeedSize bounds how many notifications are kept per session.
const DefaultFeedSize = 20

// Feed keeps the most recent notifications of each session so clients can poll for toasts.
type Feed struct {
	mu       sync.Mutex
	size     int
	sessions map[string][]Notification
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{
		size:     size,
		sessions: make(map[string][]Notification),
	}
}

func (f *Feed) Notify(_ context.Context, sessionID string, n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := append(f.sessions[sessionID], n)
	if len(entries) > f.size {
		entries = append([]Notification(nil), entries[len(entries)-f.size:]...)
	}
	f.sessions[sessionID] = entries
}

// Recent returns the session's notifications, newest first.
func (f *Feed) Recent(sessionID string) []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := f.sessions[sessionID]
	out := make([]Notification, len(entries))
	for i, n := range entries {
		out[len(entries)-1-i] = n
	}
	return out
}

// Forget drops everything held for the session.
func (f *Feed) Forget(sessionID string) {
	f.mu.Lock()
	delete(f.sessions, sessionID)
	f.mu.Unlock()
}
