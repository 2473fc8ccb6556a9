package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"shadowroll-bot/internal/roller"
)

func TestStoreFallback(t *testing.T) {
	s := NewStore(roller.SR5)

	assert.Equal(t, roller.SR5, s.UserEdition(1))
	assert.Equal(t, roller.SR5, s.ChatEdition(1))
}

func TestStoreSetAndGet(t *testing.T) {
	s := NewStore(roller.SR5)

	s.SetUser(7, roller.SR4)
	s.SetChat(-100, roller.SR6)

	assert.Equal(t, roller.SR4, s.UserEdition(7))
	assert.Equal(t, roller.SR6, s.ChatEdition(-100))
	// Other IDs are unaffected.
	assert.Equal(t, roller.SR5, s.UserEdition(8))
	assert.Equal(t, roller.SR5, s.ChatEdition(-101))
}

func TestStoreResolve(t *testing.T) {
	s := NewStore(roller.SR5)
	s.SetUser(7, roller.SR4)
	s.SetChat(-100, roller.SR6)

	// Private chats follow the sender, groups follow the chat.
	assert.Equal(t, roller.SR4, s.Resolve(7, -100, true))
	assert.Equal(t, roller.SR6, s.Resolve(7, -100, false))
	assert.Equal(t, roller.SR5, s.Resolve(9, -200, true))
	assert.Equal(t, roller.SR5, s.Resolve(9, -200, false))
}

func TestStoreConcurrentAccess(t *testing.T) {
	s := NewStore(roller.SR5)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		id := int64(i % 5)
		go func() {
			defer wg.Done()
			s.SetUser(id, roller.SR4)
		}()
		go func() {
			defer wg.Done()
			_ = s.Resolve(id, -id, true)
		}()
	}
	wg.Wait()
}

// A recorded preference always wins over the fallback, and Resolve only ever
// consults the side the chat type selects.
func TestStoreResolveProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		fallback := roller.Edition(rapid.IntRange(0, 2).Draw(t, "fallback"))
		s := NewStore(fallback)

		userID := rapid.Int64Range(1, 1_000_000).Draw(t, "userID")
		chatID := rapid.Int64Range(-1_000_000, -1).Draw(t, "chatID")

		var wantUser, wantChat = fallback, fallback
		if rapid.Bool().Draw(t, "hasUserPref") {
			wantUser = roller.Edition(rapid.IntRange(0, 2).Draw(t, "userPref"))
			s.SetUser(userID, wantUser)
		}
		if rapid.Bool().Draw(t, "hasChatPref") {
			wantChat = roller.Edition(rapid.IntRange(0, 2).Draw(t, "chatPref"))
			s.SetChat(chatID, wantChat)
		}

		if got := s.Resolve(userID, chatID, true); got != wantUser {
			t.Fatalf("private resolve = %v, want %v", got, wantUser)
		}
		if got := s.Resolve(userID, chatID, false); got != wantChat {
			t.Fatalf("group resolve = %v, want %v", got, wantChat)
		}
	})
}
