// Package session keeps per-user and per-chat edition preferences in memory.
// Preferences live for the process lifetime; durable storage is the hosting
// deployment's problem, not this bot's.
package session

import (
	"sync"

	"shadowroll-bot/internal/roller"
)

// Store is a concurrency-safe edition preference store. Private chats roll
// under the sender's edition, group chats under the chat's.
type Store struct {
	mu       sync.RWMutex
	users    map[int64]roller.Edition
	chats    map[int64]roller.Edition
	fallback roller.Edition
}

// NewStore creates a Store that answers fallback for anyone without a
// recorded preference.
func NewStore(fallback roller.Edition) *Store {
	return &Store{
		users:    make(map[int64]roller.Edition),
		chats:    make(map[int64]roller.Edition),
		fallback: fallback,
	}
}

// SetUser records a user's preferred edition.
func (s *Store) SetUser(userID int64, ed roller.Edition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = ed
}

// SetChat records a chat's edition.
func (s *Store) SetChat(chatID int64, ed roller.Edition) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chats[chatID] = ed
}

// UserEdition returns the user's edition, or the fallback.
func (s *Store) UserEdition(userID int64) roller.Edition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ed, ok := s.users[userID]; ok {
		return ed
	}
	return s.fallback
}

// ChatEdition returns the chat's edition, or the fallback.
func (s *Store) ChatEdition(chatID int64) roller.Edition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if ed, ok := s.chats[chatID]; ok {
		return ed
	}
	return s.fallback
}

// Resolve returns the edition governing a message: the sender's preference
// in private chats, the chat's everywhere else.
func (s *Store) Resolve(userID, chatID int64, private bool) roller.Edition {
	if private {
		return s.UserEdition(userID)
	}
	return s.ChatEdition(chatID)
}
