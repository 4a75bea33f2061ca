// Package events - types.go
package events

// MatchOpened is emitted when a tracked tournament match becomes playable.
type MatchOpened struct {
	TournamentID string // challonge id or subdomain-url, rendered
	MatchID      uint64
	Identifier   string // bracket letter ("A", "B", ...)
	Round        int64
	Player1      string
	Player2      string
}

// MatchCompleted is emitted when a tracked match got its final score.
type MatchCompleted struct {
	TournamentID string
	MatchID      uint64
	Identifier   string
	Winner       string
	Loser        string
	Scores       string // "3-1,3-2"
}

// TournamentCompleted is emitted when every match of a tracked tournament
// is done.
type TournamentCompleted struct {
	TournamentID string
	Name         string
	Winner       string
}
