// internal/challonge/scores.go
// The scores_csv wire format: "3-1,3-2", player 1 first, arbitrary
// whitespace around everything.
package challonge

import (
	"strconv"
	"strings"
)

// MatchScore is one game's score pair, player 1 first.
type MatchScore struct {
	P1 uint64
	P2 uint64
}

// ParseMatchScore splits on the first dash and reads each side as an
// unsigned decimal. Anything missing or unparseable counts as zero. The
// service does emit half-formed scores ("9-", "-118"), so the leniency is
// the contract here, not a shortcut.
func ParseMatchScore(s string) MatchScore {
	a, b, _ := strings.Cut(strings.TrimSpace(s), "-")
	return MatchScore{P1: scorePart(a), P2: scorePart(b)}
}

func scorePart(s string) uint64 {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func (s MatchScore) String() string {
	return strconv.FormatUint(s.P1, 10) + "-" + strconv.FormatUint(s.P2, 10)
}

// MatchScores is the ordered per-game score list of a match.
type MatchScores []MatchScore

// ParseMatchScores splits on commas and parses every segment. Under the
// per-score leniency a segment never fails, so the result always has one
// entry per comma-delimited segment (an empty string yields a single 0-0).
func ParseMatchScores(s string) MatchScores {
	parts := strings.Split(s, ",")
	out := make(MatchScores, 0, len(parts))
	for _, p := range parts {
		out = append(out, ParseMatchScore(p))
	}
	return out
}

func (ss MatchScores) String() string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}
