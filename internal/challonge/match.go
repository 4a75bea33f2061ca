// internal/challonge/match.go
package challonge

import "time"

// MatchState is the lifecycle state of a match. All is a query-only
// pseudo-state used for filtering the index, a real match never has it.
type MatchState int

const (
	MatchAll MatchState = iota
	MatchPending
	MatchOpen
	MatchComplete
)

func (s MatchState) String() string {
	switch s {
	case MatchPending:
		return "pending"
	case MatchOpen:
		return "open"
	case MatchComplete:
		return "complete"
	default:
		return "all"
	}
}

// ParseMatchState reads the service spelling of a match state.
func ParseMatchState(s string) (MatchState, bool) {
	switch s {
	case "all":
		return MatchAll, true
	case "pending":
		return MatchPending, true
	case "open":
		return MatchOpen, true
	case "complete":
		return MatchComplete, true
	}
	return MatchAll, false
}

// Player is one side of a match. The wire format has no nested player
// object, the fields sit flattened on the match as player1_* / player2_*;
// the nesting here is our own modeling choice.
type Player struct {
	ID ParticipantID

	// IsPrereqMatchLoser reports whether this slot is fed by the loser of
	// the prerequisite match (elimination brackets).
	IsPrereqMatchLoser bool
	PrereqMatchID      *MatchID
	Votes              uint64
}

// decodePlayer pulls one player's prefixed fields out of the match map.
func decodePlayer(f *fields, prefix string) Player {
	p := Player{
		ID:                 ParticipantID(f.reqUint(prefix + "id")),
		IsPrereqMatchLoser: f.reqBool(prefix + "is_prereq_match_loser"),
		Votes:              f.uint(prefix + "votes"),
	}
	if id := f.optUint(prefix + "prereq_match_id"); id != nil {
		m := MatchID(*id)
		p.PrereqMatchID = &m
	}
	return p
}

// Match is a decoded match record.
type Match struct {
	ID           MatchID
	TournamentID TournamentID
	Identifier   string
	State        MatchState

	// Round is negative for losers bracket rounds in double elimination.
	Round int64

	Player1 Player
	Player2 Player

	WinnerID *ParticipantID
	LoserID  *ParticipantID

	Scores                  MatchScores
	PrerequisiteMatchIDsCSV string
	HasAttachment           bool

	StartedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DecodeMatch decodes the {"match": {...}} payload.
func DecodeMatch(v any) (*Match, error) {
	f, err := unwrap(v, "match")
	if err != nil {
		return nil, err
	}

	// Unknown or null state falls back to the pseudo-state, same as the
	// rest of the value leniency.
	state, _ := ParseMatchState(f.str("state"))

	m := &Match{
		ID:                      MatchID(f.reqUint("id")),
		TournamentID:            NewTournamentID(f.reqUint("tournament_id")),
		Identifier:              f.str("identifier"),
		State:                   state,
		Round:                   f.reqInt("round"),
		Player1:                 decodePlayer(f, "player1_"),
		Player2:                 decodePlayer(f, "player2_"),
		Scores:                  ParseMatchScores(f.str("scores_csv")),
		PrerequisiteMatchIDsCSV: f.str("prerequisite_match_ids_csv"),
		HasAttachment:           f.boolean("has_attachment"),
		StartedAt:               f.optStamp("started_at"),
		CreatedAt:               f.stamp("created_at"),
		UpdatedAt:               f.stamp("updated_at"),
	}
	if id := f.optUint("winner_id"); id != nil {
		w := ParticipantID(*id)
		m.WinnerID = &w
	}
	if id := f.optUint("loser_id"); id != nil {
		l := ParticipantID(*id)
		m.LoserID = &l
	}
	if f.err != nil {
		return nil, f.err
	}
	return m, nil
}

// MatchIndex is a tournament's decoded match list.
type MatchIndex []Match

// DecodeMatchIndex decodes a JSON array of match payloads, preserving
// order. A bad element fails the whole index.
func DecodeMatchIndex(v any) (MatchIndex, error) {
	ms, err := decodeSlice(v, func(el any) (Match, error) {
		m, err := DecodeMatch(el)
		if err != nil {
			return Match{}, err
		}
		return *m, nil
	})
	if err != nil {
		return nil, err
	}
	return MatchIndex(ms), nil
}

// MatchUpdate reports scores for a match. Caller contract: if WinnerID is
// set, Scores must be too (the service rejects a winner without scores, and
// changing a completed match resets everything branching from it).
type MatchUpdate struct {
	Scores       MatchScores
	WinnerID     *ParticipantID
	Player1Votes *uint64
	Player2Votes *uint64
}

// NewMatchUpdate returns an empty update builder.
func NewMatchUpdate() *MatchUpdate {
	return &MatchUpdate{}
}

func (mu *MatchUpdate) SetScores(scores MatchScores) *MatchUpdate {
	mu.Scores = scores
	return mu
}

func (mu *MatchUpdate) SetWinner(id ParticipantID) *MatchUpdate {
	mu.WinnerID = &id
	return mu
}

func (mu *MatchUpdate) SetPlayer1Votes(votes uint64) *MatchUpdate {
	mu.Player1Votes = &votes
	return mu
}

func (mu *MatchUpdate) SetPlayer2Votes(votes uint64) *MatchUpdate {
	mu.Player2Votes = &votes
	return mu
}

// Params flattens the update into the ordered match[...] field list.
func (mu *MatchUpdate) Params() []Param {
	var params []Param
	if mu.Player1Votes != nil {
		params = append(params, Param{mkey("player1_votes"), fmtUint(*mu.Player1Votes)})
	}
	if mu.Player2Votes != nil {
		params = append(params, Param{mkey("player2_votes"), fmtUint(*mu.Player2Votes)})
	}
	params = append(params, Param{mkey("scores_csv"), mu.Scores.String()})
	if mu.WinnerID != nil {
		params = append(params, Param{mkey("winner_id"), mu.WinnerID.String()})
	}
	return params
}
