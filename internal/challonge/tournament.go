// internal/challonge/tournament.go
// Tournament record, its enums, and the create/update builder.
package challonge

import "time"

// TournamentType is the bracket format of a tournament.
type TournamentType int

const (
	SingleElimination TournamentType = iota
	DoubleElimination
	RoundRobin
	Swiss
)

// String is the human-readable spelling, which is also what the service
// wants in form bodies.
func (t TournamentType) String() string {
	switch t {
	case DoubleElimination:
		return "double elimination"
	case RoundRobin:
		return "round robin"
	case Swiss:
		return "swiss"
	default:
		return "single elimination"
	}
}

// QueryParam is the underscore spelling used only for the "type" query
// parameter of the tournament index. Keep it separate from String, the
// service treats them differently.
func (t TournamentType) QueryParam() string {
	switch t {
	case DoubleElimination:
		return "double_elimination"
	case RoundRobin:
		return "round_robin"
	case Swiss:
		return "swiss"
	default:
		return "single_elimination"
	}
}

// ParseTournamentType accepts both spellings the service emits.
func ParseTournamentType(s string) (TournamentType, bool) {
	switch s {
	case "single_elimination", "single elimination":
		return SingleElimination, true
	case "double_elimination", "double elimination":
		return DoubleElimination, true
	case "round_robin", "round robin":
		return RoundRobin, true
	case "swiss":
		return Swiss, true
	}
	return SingleElimination, false
}

// RankedBy is the ranking method of a swiss or round robin tournament.
type RankedBy int

const (
	MatchWins RankedBy = iota
	GameWins
	PointsScored
	PointsDifference
	CustomRanking
)

func (r RankedBy) String() string {
	switch r {
	case GameWins:
		return "game wins"
	case PointsScored:
		return "points scored"
	case PointsDifference:
		return "points difference"
	case CustomRanking:
		return "custom"
	default:
		return "match wins"
	}
}

// ParseRankedBy accepts both spellings the service emits.
func ParseRankedBy(s string) (RankedBy, bool) {
	switch s {
	case "match_wins", "match wins":
		return MatchWins, true
	case "game_wins", "game wins":
		return GameWins, true
	case "points_scored", "points scored":
		return PointsScored, true
	case "points_difference", "points difference":
		return PointsDifference, true
	case "custom":
		return CustomRanking, true
	}
	return MatchWins, false
}

// TournamentState filters the tournament index. Query-only, never decoded.
type TournamentState int

const (
	TournamentStateAll TournamentState = iota
	TournamentPending
	TournamentInProgress
	TournamentEnded
)

func (s TournamentState) String() string {
	switch s {
	case TournamentPending:
		return "pending"
	case TournamentInProgress:
		return "in_progress"
	case TournamentEnded:
		return "ended"
	default:
		return "all"
	}
}

// TournamentIncludes selects which child collections a tournament fetch
// embeds in the response.
type TournamentIncludes int

const (
	IncludeAll TournamentIncludes = iota
	IncludeMatches
	IncludeParticipants
)

// GamePoints is one point-scoring configuration. A tournament carries two
// independent ones (swiss and round robin); on the wire both are flattened
// onto the tournament object with the round robin set behind an rr_ prefix.
// We keep them nested and do the flattening only at the codec boundary.
type GamePoints struct {
	MatchWin float64
	MatchTie float64
	GameWin  float64
	GameTie  float64

	// Bye is only meaningful for swiss play and the service omits the key
	// entirely for other formats.
	Bye *float64
}

func decodeGamePoints(f *fields, prefix string) GamePoints {
	return GamePoints{
		Bye:      f.optFloatStr(prefix + "pts_for_bye"),
		MatchWin: f.floatStr(prefix + "pts_for_match_win"),
		MatchTie: f.floatStr(prefix + "pts_for_match_tie"),
		GameWin:  f.floatStr(prefix + "pts_for_game_win"),
		GameTie:  f.floatStr(prefix + "pts_for_game_tie"),
	}
}

// Tournament is a decoded tournament record.
type Tournament struct {
	ID   TournamentID
	Name string
	URL  string

	Type     TournamentType
	RankedBy RankedBy

	Description       string
	DescriptionSource string
	GameID            uint64
	GameName          string

	SwissPoints      GamePoints
	SwissRounds      uint64
	RoundRobinPoints GamePoints

	ParticipantsCount     uint64
	ProgressMeter         uint64
	PredictionMethod      uint64
	MaxPredictionsPerUser uint64

	AcceptAttachments                bool
	AllowParticipantMatchReporting   bool
	AnonymousVoting                  bool
	CreatedByAPI                     bool
	CreditCapped                     bool
	GroupStagesEnabled               bool
	GroupStagesWereStarted           bool
	HideForum                        bool
	HideSeeds                        bool
	HoldThirdPlaceMatch              bool
	NotifyUsersWhenMatchesOpen       bool
	NotifyUsersWhenTheTournamentEnds bool
	OpenSignup                       bool
	Private                          bool
	QuickAdvance                     bool
	RequireScoreAgreement            bool
	ReviewBeforeFinalizing           bool
	AcceptingPredictions             bool
	ParticipantsLocked               bool
	ParticipantsSwappable            bool
	SequentialPairings               bool
	ShowRounds                       bool
	Teams                            bool
	TeamConvertable                  bool

	FullChallongeURL string
	LiveImageURL     string

	CreatedAt time.Time
	UpdatedAt time.Time
	StartedAt *time.Time
}

// DecodeTournament decodes the {"tournament": {...}} payload.
func DecodeTournament(v any) (*Tournament, error) {
	f, err := unwrap(v, "tournament")
	if err != nil {
		return nil, err
	}

	tt, _ := ParseTournamentType(f.str("tournament_type"))
	rb, _ := ParseRankedBy(f.str("ranked_by"))

	t := &Tournament{
		ID:                               NewTournamentID(f.uint("id")),
		Name:                             f.str("name"),
		URL:                              f.str("url"),
		Type:                             tt,
		RankedBy:                         rb,
		Description:                      f.str("description"),
		DescriptionSource:                f.str("description_source"),
		GameID:                           f.uint("game_id"),
		GameName:                         f.str("game_name"),
		SwissPoints:                      decodeGamePoints(f, ""),
		SwissRounds:                      f.uint("swiss_rounds"),
		RoundRobinPoints:                 decodeGamePoints(f, "rr_"),
		ParticipantsCount:                f.uint("participants_count"),
		ProgressMeter:                    f.uint("progress_meter"),
		PredictionMethod:                 f.uint("prediction_method"),
		MaxPredictionsPerUser:            f.uint("max_predictions_per_user"),
		AcceptAttachments:                f.boolean("accept_attachments"),
		AllowParticipantMatchReporting:   f.boolean("allow_participant_match_reporting"),
		AnonymousVoting:                  f.boolean("anonymous_voting"),
		CreatedByAPI:                     f.boolean("created_by_api"),
		CreditCapped:                     f.boolean("credit_capped"),
		GroupStagesEnabled:               f.boolean("group_stages_enabled"),
		GroupStagesWereStarted:           f.boolean("group_stages_were_started"),
		HideForum:                        f.boolean("hide_forum"),
		HideSeeds:                        f.boolean("hide_seeds"),
		HoldThirdPlaceMatch:              f.boolean("hold_third_place_match"),
		NotifyUsersWhenMatchesOpen:       f.boolean("notify_users_when_matches_open"),
		NotifyUsersWhenTheTournamentEnds: f.boolean("notify_users_when_the_tournament_ends"),
		OpenSignup:                       f.boolean("open_signup"),
		Private:                          f.boolean("private"),
		QuickAdvance:                     f.boolean("quick_advance"),
		RequireScoreAgreement:            f.boolean("require_score_agreement"),
		ReviewBeforeFinalizing:           f.boolean("review_before_finalizing"),
		AcceptingPredictions:             f.boolean("accepting_predictions"),
		ParticipantsLocked:               f.boolean("participants_locked"),
		ParticipantsSwappable:            f.boolean("participants_swappable"),
		SequentialPairings:               f.boolean("sequential_pairings"),
		ShowRounds:                       f.boolean("show_rounds"),
		Teams:                            f.boolean("teams"),
		TeamConvertable:                  f.boolean("team_convertable"),
		FullChallongeURL:                 f.str("full_challonge_url"),
		LiveImageURL:                     f.str("live_image_url"),
		CreatedAt:                        f.stamp("created_at"),
		UpdatedAt:                        f.stamp("updated_at"),
		StartedAt:                        f.optStamp("started_at"),
	}
	if f.err != nil {
		return nil, f.err
	}
	return t, nil
}

// TournamentIndex is the decoded tournament list of an account.
type TournamentIndex []Tournament

// DecodeTournamentIndex decodes a JSON array of tournament payloads,
// preserving order.
func DecodeTournamentIndex(v any) (TournamentIndex, error) {
	ts, err := decodeSlice(v, func(el any) (Tournament, error) {
		t, err := DecodeTournament(el)
		if err != nil {
			return Tournament{}, err
		}
		return *t, nil
	})
	if err != nil {
		return nil, err
	}
	return TournamentIndex(ts), nil
}

// TournamentCreate is the outbound counterpart of Tournament, used for both
// create and update calls. Only encoded, never decoded.
type TournamentCreate struct {
	Name                             string
	Type                             TournamentType
	URL                              string
	Subdomain                        string
	Description                      string
	OpenSignup                       bool
	HoldThirdPlaceMatch              bool
	SwissPoints                      GamePoints
	SwissRounds                      uint64
	RankedBy                         RankedBy
	RoundRobinPoints                 GamePoints
	ShowRounds                       bool
	Private                          bool
	GameName                         *string
	NotifyUsersWhenMatchesOpen       bool
	NotifyUsersWhenTheTournamentEnds bool
	SequentialPairings               bool
	SignupCap                        uint64
	StartAt                          *time.Time
	CheckInDuration                  uint64
	GrandFinalsModifier              *string
}

// NewTournamentCreate returns a builder populated with the service's
// documented defaults (signup cap 4, 60 minute check-in, notifications on).
func NewTournamentCreate() *TournamentCreate {
	bye := 0.0
	return &TournamentCreate{
		Type:                             SingleElimination,
		SwissPoints:                      GamePoints{MatchWin: 0.5, MatchTie: 1, Bye: &bye},
		RankedBy:                         PointsScored,
		RoundRobinPoints:                 GamePoints{MatchWin: 0.5, MatchTie: 1},
		NotifyUsersWhenMatchesOpen:       true,
		NotifyUsersWhenTheTournamentEnds: true,
		SignupCap:                        4,
		CheckInDuration:                  60,
	}
}

func (tc *TournamentCreate) SetName(name string) *TournamentCreate {
	tc.Name = name
	return tc
}

func (tc *TournamentCreate) SetType(t TournamentType) *TournamentCreate {
	tc.Type = t
	return tc
}

func (tc *TournamentCreate) SetURL(url string) *TournamentCreate {
	tc.URL = url
	return tc
}

func (tc *TournamentCreate) SetSubdomain(subdomain string) *TournamentCreate {
	tc.Subdomain = subdomain
	return tc
}

func (tc *TournamentCreate) SetDescription(description string) *TournamentCreate {
	tc.Description = description
	return tc
}

func (tc *TournamentCreate) SetOpenSignup(open bool) *TournamentCreate {
	tc.OpenSignup = open
	return tc
}

func (tc *TournamentCreate) SetHoldThirdPlaceMatch(hold bool) *TournamentCreate {
	tc.HoldThirdPlaceMatch = hold
	return tc
}

func (tc *TournamentCreate) SetSwissPoints(p GamePoints) *TournamentCreate {
	tc.SwissPoints = p
	return tc
}

func (tc *TournamentCreate) SetSwissRounds(n uint64) *TournamentCreate {
	tc.SwissRounds = n
	return tc
}

func (tc *TournamentCreate) SetRankedBy(r RankedBy) *TournamentCreate {
	tc.RankedBy = r
	return tc
}

func (tc *TournamentCreate) SetRoundRobinPoints(p GamePoints) *TournamentCreate {
	tc.RoundRobinPoints = p
	return tc
}

func (tc *TournamentCreate) SetShowRounds(show bool) *TournamentCreate {
	tc.ShowRounds = show
	return tc
}

func (tc *TournamentCreate) SetPrivate(private bool) *TournamentCreate {
	tc.Private = private
	return tc
}

func (tc *TournamentCreate) SetGameName(game string) *TournamentCreate {
	tc.GameName = &game
	return tc
}

func (tc *TournamentCreate) SetNotifyUsersWhenMatchesOpen(notify bool) *TournamentCreate {
	tc.NotifyUsersWhenMatchesOpen = notify
	return tc
}

func (tc *TournamentCreate) SetNotifyUsersWhenTheTournamentEnds(notify bool) *TournamentCreate {
	tc.NotifyUsersWhenTheTournamentEnds = notify
	return tc
}

func (tc *TournamentCreate) SetSequentialPairings(seq bool) *TournamentCreate {
	tc.SequentialPairings = seq
	return tc
}

func (tc *TournamentCreate) SetSignupCap(n uint64) *TournamentCreate {
	tc.SignupCap = n
	return tc
}

func (tc *TournamentCreate) SetStartAt(at time.Time) *TournamentCreate {
	tc.StartAt = &at
	return tc
}

func (tc *TournamentCreate) SetCheckInDuration(minutes uint64) *TournamentCreate {
	tc.CheckInDuration = minutes
	return tc
}

func (tc *TournamentCreate) SetGrandFinalsModifier(m string) *TournamentCreate {
	tc.GrandFinalsModifier = &m
	return tc
}

// Params flattens the builder into the ordered tournament[...] field list.
// Optional fields are only emitted when set, omission means "unset".
func (tc *TournamentCreate) Params() []Param {
	params := []Param{
		{tkey("name"), tc.Name},
		{tkey("tournament_type"), tc.Type.String()},
		{tkey("url"), tc.URL},
		{tkey("subdomain"), tc.Subdomain},
		{tkey("description"), tc.Description},
		{tkey("open_signup"), fmtBool(tc.OpenSignup)},
		{tkey("hold_third_place_match"), fmtBool(tc.HoldThirdPlaceMatch)},
		{tkey("pts_for_match_win"), fmtF64(tc.SwissPoints.MatchWin)},
		{tkey("pts_for_match_tie"), fmtF64(tc.SwissPoints.MatchTie)},
		{tkey("pts_for_game_win"), fmtF64(tc.SwissPoints.GameWin)},
		{tkey("pts_for_game_tie"), fmtF64(tc.SwissPoints.GameTie)},
		{tkey("swiss_rounds"), fmtUint(tc.SwissRounds)},
		{tkey("ranked_by"), tc.RankedBy.String()},
		{tkey("rr_pts_for_match_win"), fmtF64(tc.RoundRobinPoints.MatchWin)},
		{tkey("rr_pts_for_match_tie"), fmtF64(tc.RoundRobinPoints.MatchTie)},
		{tkey("rr_pts_for_game_win"), fmtF64(tc.RoundRobinPoints.GameWin)},
		{tkey("rr_pts_for_game_tie"), fmtF64(tc.RoundRobinPoints.GameTie)},
		{tkey("show_rounds"), fmtBool(tc.ShowRounds)},
		{tkey("private"), fmtBool(tc.Private)},
		{tkey("notify_users_when_matches_open"), fmtBool(tc.NotifyUsersWhenMatchesOpen)},
		{tkey("notify_users_when_the_tournament_ends"), fmtBool(tc.NotifyUsersWhenTheTournamentEnds)},
		{tkey("sequential_pairings"), fmtBool(tc.SequentialPairings)},
		{tkey("signup_cap"), fmtUint(tc.SignupCap)},
		{tkey("check_in_duration"), fmtUint(tc.CheckInDuration)},
	}
	if tc.GrandFinalsModifier != nil {
		params = append(params, Param{tkey("grand_finals_modifier"), *tc.GrandFinalsModifier})
	}
	if tc.StartAt != nil {
		params = append(params, Param{tkey("start_at"), tc.StartAt.Format(time.RFC3339)})
	}
	if tc.SwissPoints.Bye != nil {
		params = append(params, Param{tkey("pts_for_bye"), fmtF64(*tc.SwissPoints.Bye)})
	}
	if tc.GameName != nil {
		params = append(params, Param{tkey("game_name"), *tc.GameName})
	}
	return params
}
