// Package roller implements the Shadowrun dice-pool core: command argument
// parsing, wave-based (Rule of Six) pool rolling, and outcome evaluation
// including hits, net hits, and glitch detection. It knows nothing about
// users, chats, or transports; adapters feed it tokens and an Edition and
// render the Result it returns.
package roller

import (
	"fmt"
	"strings"
)

// Edition selects which ruleset generation governs threshold keywords and
// the limit mechanic.
type Edition int

const (
	// SR4 uses threshold keywords up to extreme=6 and has no limit mechanic.
	SR4 Edition = iota
	// SR5 adds veryhard=6, raises extreme to 8, supports a hit limit, and
	// expects numeric thresholds written with a leading 't'.
	SR5
	// SR6 has no threshold keywords and no limit; bare numbers are thresholds.
	SR6
)

// String returns the canonical edition code.
func (e Edition) String() string {
	switch e {
	case SR4:
		return "SR4"
	case SR5:
		return "SR5"
	case SR6:
		return "SR6"
	default:
		return fmt.Sprintf("Edition(%d)", int(e))
	}
}

// ParseEdition maps user input like "5", "sr5", "SR5" to an Edition.
func ParseEdition(s string) (Edition, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "4", "SR4":
		return SR4, true
	case "5", "SR5":
		return SR5, true
	case "6", "SR6":
		return SR6, true
	default:
		return 0, false
	}
}

// Editions lists all supported editions in ruleset order.
func Editions() []Edition {
	return []Edition{SR4, SR5, SR6}
}

// thresholdKeywords maps difficulty keywords (and their abbreviations) to
// numeric thresholds per edition. The abbreviation entries mirror the full
// words exactly; SR6 accepts numeric thresholds only.
var thresholdKeywords = map[Edition]map[string]int{
	SR4: {
		"easy": 1, "ea": 1,
		"average": 2, "av": 2,
		"hard": 4, "ha": 4,
		"extreme": 6, "ex": 6,
	},
	SR5: {
		"easy": 1, "ea": 1,
		"average": 2, "av": 2,
		"hard": 4, "ha": 4,
		"veryhard": 6, "vh": 6,
		"extreme": 8, "ex": 8,
	},
	SR6: {},
}

// KeywordThreshold resolves a difficulty keyword for the given edition.
// Matching is case-insensitive and ignores embedded spaces ("very hard").
func KeywordThreshold(e Edition, keyword string) (int, bool) {
	key := strings.ReplaceAll(strings.ToLower(keyword), " ", "")
	v, ok := thresholdKeywords[e][key]
	return v, ok
}

// LimitSupported reports whether the edition accepts a numeric limit
// argument that caps reported hits.
func (e Edition) LimitSupported() bool {
	return e == SR5
}

// AcceptsThresholdPrefix reports whether a numeric threshold token may be
// written with a leading 't'. Only SR5 needs the marker, to disambiguate a
// threshold from a limit; the other editions have no limit concept and read
// a bare number as a threshold.
func (e Edition) AcceptsThresholdPrefix() bool {
	return e == SR5
}
