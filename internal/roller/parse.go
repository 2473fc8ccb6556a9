package roller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinDice is the smallest allowed dice pool.
	MinDice = 1
	// MaxDice is the largest allowed dice pool.
	MaxDice = 99
	// MaxCommentLength is the longest comment kept from a roll command;
	// anything beyond it is truncated, not rejected.
	MaxCommentLength = 50
)

// ErrInvalidArgument is returned for any malformed roll command: missing or
// unparseable dice count, dice count outside 1-99, or a malformed threshold
// token. Callers present the wrapped reason however their transport likes.
var ErrInvalidArgument = errors.New("invalid argument")

// Request is a parsed roll command. Limit and Threshold are nil when the
// command did not supply them.
type Request struct {
	DiceCount int
	Edge      bool
	Limit     *int
	Threshold *int
	Comment   string
}

// parseState tracks which positional tokens may still be consumed.
type parseState int

const (
	// seekLimitOrThreshold: a limit or a threshold may come next (SR5 start,
	// or SR5 after a keyword threshold while the limit slot is still open).
	seekLimitOrThreshold parseState = iota
	// seekThresholdOnly: only a threshold may come next (editions without
	// limit support, or SR5 once the limit has been consumed).
	seekThresholdOnly
	// collectComment: positional parsing is over; the rest is comment.
	collectComment
)

// Parse turns raw whitespace-split command tokens into a Request under the
// given edition's rules.
//
// The first token is the mandatory dice-count expression: digits with an
// optional trailing 'e' (case-insensitive) that enables edge. The remaining
// tokens are scanned left to right for an optional limit (SR5 only) and an
// optional threshold (keyword, bare number, or 't'-prefixed number depending
// on edition); the first token that fits neither slot starts the comment.
func Parse(tokens []string, ed Edition) (Request, error) {
	if len(tokens) == 0 {
		return Request{}, fmt.Errorf("%w: missing dice count", ErrInvalidArgument)
	}

	req := Request{}

	raw := tokens[0]
	if n := len(raw); n > 0 && (raw[n-1] == 'e' || raw[n-1] == 'E') {
		req.Edge = true
		raw = raw[:n-1]
	}
	count, err := strconv.Atoi(raw)
	if !isDigits(raw) || err != nil {
		return Request{}, fmt.Errorf("%w: bad dice count %q", ErrInvalidArgument, tokens[0])
	}
	if count < MinDice || count > MaxDice {
		return Request{}, fmt.Errorf("%w: dice count must be between %d and %d", ErrInvalidArgument, MinDice, MaxDice)
	}
	req.DiceCount = count

	state := seekThresholdOnly
	if ed.LimitSupported() {
		state = seekLimitOrThreshold
	}

	var comment []string
	for _, tok := range tokens[1:] {
		if state != collectComment {
			next, consumed, err := consumePositional(&req, tok, ed, state)
			if err != nil {
				return Request{}, err
			}
			state = next
			if consumed {
				continue
			}
			state = collectComment
		}
		comment = append(comment, tok)
	}

	req.Comment = truncateComment(strings.Join(comment, " "))
	return req, nil
}

// consumePositional tries to fill the limit or threshold slot from tok.
// It reports the next parser state and whether tok was consumed; an
// unconsumed token belongs to the comment.
func consumePositional(req *Request, tok string, ed Edition, state parseState) (parseState, bool, error) {
	// A 't'-prefixed number is always a threshold, regardless of position.
	if ed.AcceptsThresholdPrefix() && req.Threshold == nil {
		if v, ok, err := parsePrefixedThreshold(tok); err != nil {
			return state, false, err
		} else if ok {
			req.Threshold = &v
			return collectComment, true, nil
		}
	}

	if v, ok := KeywordThreshold(ed, tok); ok && req.Threshold == nil {
		req.Threshold = &v
		// The limit slot stays open after a keyword threshold (SR5 only).
		if state == seekLimitOrThreshold && req.Limit == nil {
			return seekLimitOrThreshold, true, nil
		}
		return collectComment, true, nil
	}

	if isDigits(tok) {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return state, false, fmt.Errorf("%w: bad number %q", ErrInvalidArgument, tok)
		}
		if state == seekLimitOrThreshold && req.Limit == nil {
			req.Limit = &v
			if req.Threshold != nil {
				return collectComment, true, nil
			}
			return seekThresholdOnly, true, nil
		}
		if req.Threshold == nil {
			req.Threshold = &v
			return collectComment, true, nil
		}
	}

	return collectComment, false, nil
}

// parsePrefixedThreshold recognizes 't'-prefixed numeric thresholds like
// "t2". A 't' followed by digits and trailing junk ("t2x") is a malformed
// threshold; a 't' followed by anything else ("take") is an ordinary word.
func parsePrefixedThreshold(tok string) (int, bool, error) {
	if len(tok) < 2 || (tok[0] != 't' && tok[0] != 'T') {
		return 0, false, nil
	}
	rest := tok[1:]
	if rest[0] < '0' || rest[0] > '9' {
		return 0, false, nil
	}
	if !isDigits(rest) {
		return 0, false, fmt.Errorf("%w: bad threshold %q", ErrInvalidArgument, tok)
	}
	v, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false, fmt.Errorf("%w: bad threshold %q", ErrInvalidArgument, tok)
	}
	return v, true, nil
}

func truncateComment(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxCommentLength {
		return s
	}
	return string(runes[:MaxCommentLength])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
