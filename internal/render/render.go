// Package render turns evaluated rolls into plain text replies. The text is
// transport-neutral: adapters send it as-is, no per-client markup.
package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"shadowroll-bot/internal/roller"
)

const (
	// dicePerLine is how many die tokens fit on one line before wrapping.
	dicePerLine = 10
	// spacerEvery inserts extra spacing after this many tokens for
	// readability.
	spacerEvery = 5
)

// Roll renders an evaluated roll: optional comment, edition header, each
// wave sorted descending, the hit line, net hits with outcome, and the
// glitch line when one occurred.
func Roll(ed roller.Edition, req roller.Request, res roller.Result) string {
	var parts []string

	if req.Comment != "" {
		parts = append(parts, fmt.Sprintf("📝 %q", req.Comment))
	}

	header := fmt.Sprintf("🎲 %s Rolls:", ed)
	if req.Edge {
		header += " (Using edge!)"
	}
	parts = append(parts, header)

	blocks := make([]string, 0, len(res.Waves))
	for _, wave := range res.Waves {
		blocks = append(blocks, formatWave(wave))
	}
	parts = append(parts, strings.Join(blocks, "\n\n"))

	if res.Capped {
		parts = append(parts, fmt.Sprintf("🏹 Hits: %d (capped from %d)", res.Hits, res.RawHits))
	} else {
		parts = append(parts, fmt.Sprintf("🏹 Hits: %d", res.Hits))
	}

	if res.NetHits != nil {
		parts = append(parts, fmt.Sprintf("🎯 Net Hits: %d", *res.NetHits))
		parts = append(parts, res.Outcome.String()+"!")
	}

	if res.Glitch != roller.GlitchNone {
		emoji := "😵"
		if res.Glitch == roller.GlitchCritical {
			emoji = "💀"
		}
		parts = append(parts, fmt.Sprintf("%s %s! %s", emoji, res.Glitch, emoji))
	}

	return strings.Join(parts, "\n\n")
}

// formatWave renders one wave with dice sorted descending, wrapped into
// readable lines.
func formatWave(wave roller.Wave) string {
	sorted := make([]int, len(wave))
	copy(sorted, wave)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	tokens := make([]string, len(sorted))
	for i, d := range sorted {
		tokens[i] = formatDie(d)
	}
	return strings.Join(groupIntoLines(tokens), "\n")
}

// formatDie marks hits with a trailing asterisk and wraps ones in
// parentheses so both stand out without any markup.
func formatDie(d int) string {
	switch {
	case d >= 5:
		return strconv.Itoa(d) + "*"
	case d == 1:
		return "(1)"
	default:
		return strconv.Itoa(d)
	}
}

// groupIntoLines packs die tokens into lines of dicePerLine with a wider
// gap after every spacerEvery tokens.
func groupIntoLines(tokens []string) []string {
	var lines []string
	var line strings.Builder

	for i, tok := range tokens {
		if i%dicePerLine == 0 && line.Len() > 0 {
			lines = append(lines, strings.TrimSpace(line.String()))
			line.Reset()
		}
		if i%dicePerLine != 0 && i%spacerEvery == 0 {
			line.WriteString("  ")
		}
		line.WriteString(tok)
		line.WriteString(" ")
	}
	if line.Len() > 0 {
		lines = append(lines, strings.TrimSpace(line.String()))
	}
	return lines
}
