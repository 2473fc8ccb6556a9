package roller

// Outcome classifies a roll against its success threshold.
type Outcome int

const (
	// OutcomeNoThreshold means no threshold was supplied; the roll just
	// reports hits.
	OutcomeNoThreshold Outcome = iota
	// OutcomeSuccess means hits met or exceeded the threshold.
	OutcomeSuccess
	// OutcomeFailure means hits fell short of the threshold.
	OutcomeFailure
)

// String returns the display text for the outcome, empty for no threshold.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "Success"
	case OutcomeFailure:
		return "Failure"
	default:
		return ""
	}
}

// Glitch classifies the ones rolled in the initial pool.
type Glitch int

const (
	// GlitchNone means too few ones to glitch.
	GlitchNone Glitch = iota
	// GlitchNormal means a glitch alongside at least one hit.
	GlitchNormal
	// GlitchCritical means a glitch with zero hits.
	GlitchCritical
)

// String returns the display text for the glitch, empty for none.
func (g Glitch) String() string {
	switch g {
	case GlitchNormal:
		return "Glitch"
	case GlitchCritical:
		return "Critical Glitch"
	default:
		return ""
	}
}

// Result is the fully evaluated outcome of one roll.
type Result struct {
	Waves   []Wave
	RawHits int
	Hits    int  // RawHits after the optional limit cap
	Limit   *int // echoed from the request for display
	Capped  bool // whether the limit actually reduced RawHits
	NetHits *int // Hits - threshold; nil without a threshold
	Outcome Outcome
	Glitch  Glitch
}

// Evaluate computes hits, net hits, outcome, and glitch classification for
// rolled waves. It is deterministic and never fails for waves produced by
// Roll; an empty wave set is a programming error and panics.
//
// Hits count every die showing 5 or 6 across all waves. Glitch detection
// looks at wave 0 only: exploded dice never add ones. A pool glitches when
// it rolled at least one 1 and the ones reach half the original pool size,
// rounding down; a glitch with zero hits is critical.
func Evaluate(waves []Wave, limit, threshold *int) Result {
	if len(waves) == 0 || len(waves[0]) == 0 {
		panic("roller: evaluate called without a rolled pool")
	}

	res := Result{Waves: waves, Limit: limit}

	for _, w := range waves {
		for _, d := range w {
			if d >= 5 {
				res.RawHits++
			}
		}
	}

	res.Hits = res.RawHits
	if limit != nil && res.RawHits > *limit {
		res.Hits = *limit
		res.Capped = true
	}

	ones := countFace(waves[0], 1)
	if ones > 0 && ones >= len(waves[0])/2 {
		if res.Hits == 0 {
			res.Glitch = GlitchCritical
		} else {
			res.Glitch = GlitchNormal
		}
	}

	if threshold != nil {
		net := res.Hits - *threshold
		res.NetHits = &net
		if net >= 0 {
			res.Outcome = OutcomeSuccess
		} else {
			res.Outcome = OutcomeFailure
		}
	}
	return res
}
