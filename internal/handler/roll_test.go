package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadowroll-bot/internal/roller"
	"shadowroll-bot/internal/session"
)

// scriptedSource feeds predetermined die faces to the roller.
type scriptedSource struct {
	faces []int
	next  int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.faces[s.next]
	s.next++
	return v - 1
}

func TestResolveRendersFullResult(t *testing.T) {
	r := roller.New(&roller.Config{Source: &scriptedSource{faces: []int{6, 6, 5, 2, 3}}})
	h := NewRollHandler(r, session.NewStore(roller.SR5))

	reply, err := h.resolve([]string{"5", "2", "t2", "Sneak", "in"}, roller.SR5)
	require.NoError(t, err)

	assert.Contains(t, reply, `📝 "Sneak in"`)
	assert.Contains(t, reply, "🎲 SR5 Rolls:")
	assert.Contains(t, reply, "🏹 Hits: 2 (capped from 3)")
	assert.Contains(t, reply, "🎯 Net Hits: 0")
	assert.Contains(t, reply, "Success!")
}

func TestResolveRejectsBadCommand(t *testing.T) {
	h := NewRollHandler(roller.New(nil), session.NewStore(roller.SR5))

	_, err := h.resolve([]string{"100"}, roller.SR5)
	assert.ErrorIs(t, err, roller.ErrInvalidArgument)

	_, err = h.resolve(nil, roller.SR5)
	assert.ErrorIs(t, err, roller.ErrInvalidArgument)
}
