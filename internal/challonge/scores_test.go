package challonge

import "testing"

func TestParseMatchScore_Leniency(t *testing.T) {
	cases := []struct {
		in   string
		want MatchScore
	}{
		{"3-1", MatchScore{3, 1}},
		{"", MatchScore{0, 0}},
		{"3-0", MatchScore{3, 0}},
		{"3--5", MatchScore{3, 0}}, // negative side is unparseable, not -5
		{"0-0", MatchScore{0, 0}},
		{"  9-", MatchScore{9, 0}},
		{"    -    118  ", MatchScore{0, 118}},
		{"garbage", MatchScore{0, 0}},
	}
	for _, c := range cases {
		if got := ParseMatchScore(c.in); got != c.want {
			t.Errorf("ParseMatchScore(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestMatchScore_RoundTrip(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"3-1", "3-1"},
		{" 16 - 14 ", "16-14"}, // whitespace normalized away
		{"0-0", "0-0"},
	}
	for _, c := range cases {
		if got := ParseMatchScore(c.in).String(); got != c.want {
			t.Errorf("round trip %q = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseMatchScores_SegmentCount(t *testing.T) {
	ss := ParseMatchScores("3-1, 3-2")
	if len(ss) != 2 {
		t.Fatalf("want 2 scores, got %d", len(ss))
	}
	if ss[0] != (MatchScore{3, 1}) || ss[1] != (MatchScore{3, 2}) {
		t.Fatalf("wrong scores: %v", ss)
	}
	if ss.String() != "3-1,3-2" {
		t.Fatalf("render = %q", ss.String())
	}

	// an empty string is one (zero) segment, not zero segments
	if ss := ParseMatchScores(""); len(ss) != 1 || ss[0] != (MatchScore{0, 0}) {
		t.Fatalf("empty input: %v", ss)
	}

	// malformed segments survive as 0-0, order preserved
	ss = ParseMatchScores("5-3,bogus, -2")
	if len(ss) != 3 {
		t.Fatalf("want 3 segments, got %d", len(ss))
	}
	if ss[1] != (MatchScore{0, 0}) || ss[2] != (MatchScore{0, 2}) {
		t.Fatalf("wrong lenient scores: %v", ss)
	}
}
