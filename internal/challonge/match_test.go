package challonge

import (
	"errors"
	"testing"
)

const sampleMatch = `{
  "match": {
    "attachment_count": null,
    "created_at": "2015-01-19T16:57:17-05:00",
    "group_id": null,
    "has_attachment": false,
    "id": 23575258,
    "identifier": "A",
    "location": null,
    "loser_id": 16543997,
    "player1_id": 16543993,
    "player1_is_prereq_match_loser": false,
    "player1_prereq_match_id": null,
    "player1_votes": null,
    "player2_id": 16543997,
    "player2_is_prereq_match_loser": false,
    "player2_prereq_match_id": null,
    "player2_votes": null,
    "round": 1,
    "scheduled_time": null,
    "started_at": "2015-01-19T16:57:17-05:00",
    "state": "complete",
    "tournament_id": 1086875,
    "underway_at": null,
    "updated_at": "2015-01-19T16:57:17-05:00",
    "winner_id": 16543993,
    "prerequisite_match_ids_csv": "",
    "scores_csv": "3-1, 3-2"
  }
}`

func TestDecodeMatch(t *testing.T) {
	m, err := DecodeMatch(mustJSON(t, sampleMatch))
	if err != nil {
		t.Fatal(err)
	}

	if m.ID != 23575258 {
		t.Errorf("id = %d", m.ID)
	}
	if num, ok := m.TournamentID.Num(); !ok || num != 1086875 {
		t.Errorf("tournament_id = %v %v", num, ok)
	}
	if m.Identifier != "A" || m.Round != 1 {
		t.Errorf("identifier/round = %q/%d", m.Identifier, m.Round)
	}
	if m.State != MatchComplete {
		t.Errorf("state = %v", m.State)
	}

	if m.Player1.ID != 16543993 || m.Player2.ID != 16543997 {
		t.Errorf("player ids = %d/%d", m.Player1.ID, m.Player2.ID)
	}
	if m.Player1.IsPrereqMatchLoser || m.Player2.IsPrereqMatchLoser {
		t.Error("prereq loser flags flipped")
	}
	if m.Player1.PrereqMatchID != nil || m.Player2.PrereqMatchID != nil {
		t.Error("null prereq ids not nil")
	}
	// null votes count as zero, not as an error
	if m.Player1.Votes != 0 || m.Player2.Votes != 0 {
		t.Errorf("votes = %d/%d", m.Player1.Votes, m.Player2.Votes)
	}

	if m.WinnerID == nil || *m.WinnerID != 16543993 {
		t.Errorf("winner = %v", m.WinnerID)
	}
	if m.LoserID == nil || *m.LoserID != 16543997 {
		t.Errorf("loser = %v", m.LoserID)
	}

	want := MatchScores{{3, 1}, {3, 2}}
	if len(m.Scores) != 2 || m.Scores[0] != want[0] || m.Scores[1] != want[1] {
		t.Errorf("scores = %v", m.Scores)
	}
	if m.StartedAt == nil {
		t.Error("started_at missing")
	}
	if m.HasAttachment {
		t.Error("has_attachment flipped")
	}
}

func TestDecodeMatch_OpenNoWinner(t *testing.T) {
	payload := `{
	  "match": {
	    "id": 1, "tournament_id": 2, "identifier": "B", "state": "open",
	    "round": -2,
	    "player1_id": 10, "player1_is_prereq_match_loser": true,
	    "player1_prereq_match_id": 99, "player1_votes": 4,
	    "player2_id": 11, "player2_is_prereq_match_loser": false,
	    "player2_prereq_match_id": null, "player2_votes": null,
	    "winner_id": null, "loser_id": null,
	    "scores_csv": "", "prerequisite_match_ids_csv": "99",
	    "has_attachment": false, "started_at": null,
	    "created_at": "2015-01-19T16:57:17-05:00",
	    "updated_at": "2015-01-19T16:57:17-05:00"
	  }
	}`
	m, err := DecodeMatch(mustJSON(t, payload))
	if err != nil {
		t.Fatal(err)
	}
	if m.Round != -2 {
		t.Errorf("round = %d, want losers bracket round", m.Round)
	}
	if m.WinnerID != nil || m.LoserID != nil {
		t.Error("open match must have nil winner and loser")
	}
	if !m.Player1.IsPrereqMatchLoser || m.Player1.PrereqMatchID == nil || *m.Player1.PrereqMatchID != 99 {
		t.Errorf("player1 prereq = %+v", m.Player1)
	}
	if m.Player1.Votes != 4 {
		t.Errorf("player1 votes = %d", m.Player1.Votes)
	}
	// empty scores_csv decodes to a single 0-0 pair
	if len(m.Scores) != 1 || m.Scores[0] != (MatchScore{0, 0}) {
		t.Errorf("scores = %v", m.Scores)
	}
	if m.StartedAt != nil {
		t.Errorf("started_at = %v", m.StartedAt)
	}
}

func TestDecodeMatch_RequiredPlayerFields(t *testing.T) {
	// player ids and prereq loser flags never come back null on a real match
	payload := `{
	  "match": {
	    "id": 1, "tournament_id": 2, "identifier": "B", "state": "open",
	    "round": 1,
	    "player1_id": null, "player1_is_prereq_match_loser": false,
	    "player1_prereq_match_id": null, "player1_votes": null,
	    "player2_id": 11, "player2_is_prereq_match_loser": false,
	    "player2_prereq_match_id": null, "player2_votes": null,
	    "winner_id": null, "loser_id": null,
	    "scores_csv": "", "prerequisite_match_ids_csv": "",
	    "has_attachment": false, "started_at": null,
	    "created_at": "2015-01-19T16:57:17-05:00",
	    "updated_at": "2015-01-19T16:57:17-05:00"
	  }
	}`
	if _, err := DecodeMatch(mustJSON(t, payload)); !errors.Is(err, ErrDecode) {
		t.Fatalf("want ErrDecode for null player1_id, got %v", err)
	}
}

func TestDecodeMatchIndex_BadElement(t *testing.T) {
	payload := `[` + sampleMatch + `, {"match": {}}]`
	if _, err := DecodeMatchIndex(mustJSON(t, payload)); !errors.Is(err, ErrDecode) {
		t.Fatalf("bad element must fail the index, got %v", err)
	}
}

func TestMatchUpdate_Params(t *testing.T) {
	mu := NewMatchUpdate().
		SetScores(MatchScores{{3, 1}, {2, 3}, {3, 0}}).
		SetWinner(16543993).
		SetPlayer1Votes(2)

	params := mu.Params()
	m := paramsMap(t, params)
	if m["match[scores_csv]"] != "3-1,2-3,3-0" {
		t.Errorf("scores_csv = %q", m["match[scores_csv]"])
	}
	if m["match[winner_id]"] != "16543993" {
		t.Errorf("winner_id = %q", m["match[winner_id]"])
	}
	if m["match[player1_votes]"] != "2" {
		t.Errorf("player1_votes = %q", m["match[player1_votes]"])
	}
	if _, ok := m["match[player2_votes]"]; ok {
		t.Error("unset player2_votes must be omitted")
	}

	// scores_csv before winner_id, votes first
	var order []string
	for _, p := range params {
		order = append(order, p.Key)
	}
	want := []string{"match[player1_votes]", "match[scores_csv]", "match[winner_id]"}
	for i, k := range want {
		if order[i] != k {
			t.Fatalf("order = %v", order)
		}
	}
}
