package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"shadowroll-bot/internal/roller"
)

func intp(v int) *int { return &v }

func TestFormatDie(t *testing.T) {
	assert.Equal(t, "6*", formatDie(6))
	assert.Equal(t, "5*", formatDie(5))
	assert.Equal(t, "4", formatDie(4))
	assert.Equal(t, "(1)", formatDie(1))
}

func TestGroupIntoLines(t *testing.T) {
	tokens := make([]string, 23)
	for i := range tokens {
		tokens[i] = "2"
	}

	lines := groupIntoLines(tokens)
	assert.Len(t, lines, 3)
	// Ten tokens per full line, five per visual group.
	assert.Equal(t, "2 2 2 2 2   2 2 2 2 2", lines[0])
	assert.Equal(t, "2 2 2", lines[2])
}

func TestRollBasic(t *testing.T) {
	req := roller.Request{DiceCount: 5}
	res := roller.Evaluate([]roller.Wave{{2, 6, 3, 5, 1}}, nil, nil)

	out := Roll(roller.SR5, req, res)
	assert.Contains(t, out, "🎲 SR5 Rolls:")
	assert.NotContains(t, out, "Using edge")
	// Dice are sorted descending with hits and ones marked.
	assert.Contains(t, out, "6* 5* 3 2 (1)")
	assert.Contains(t, out, "🏹 Hits: 2")
	assert.NotContains(t, out, "Net Hits")
	assert.NotContains(t, out, "Glitch")
}

func TestRollFull(t *testing.T) {
	req := roller.Request{DiceCount: 5, Edge: true, Comment: "Sneak in"}
	waves := []roller.Wave{{6, 6, 5, 5, 2}, {3, 4}}
	res := roller.Evaluate(waves, intp(2), intp(3))

	out := Roll(roller.SR5, req, res)
	assert.Contains(t, out, `📝 "Sneak in"`)
	assert.Contains(t, out, "(Using edge!)")
	assert.Contains(t, out, "🏹 Hits: 2 (capped from 4)")
	assert.Contains(t, out, "🎯 Net Hits: -1")
	assert.Contains(t, out, "Failure!")
	// One block per wave, separated by a blank line.
	assert.Equal(t, 1, strings.Count(out, "6* 6* 5* 5* 2\n\n4 3"))
}

func TestRollGlitchLines(t *testing.T) {
	req := roller.Request{DiceCount: 4}

	glitchy := roller.Evaluate([]roller.Wave{{1, 1, 6, 2}}, nil, nil)
	out := Roll(roller.SR4, req, glitchy)
	assert.Contains(t, out, "😵 Glitch! 😵")

	critical := roller.Evaluate([]roller.Wave{{1, 1, 2, 2}}, nil, nil)
	out = Roll(roller.SR4, req, critical)
	assert.Contains(t, out, "💀 Critical Glitch! 💀")
}
