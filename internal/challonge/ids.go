// internal/challonge/ids.go
package challonge

import "strconv"

// ParticipantID is the numeric id of a tournament participant.
type ParticipantID uint64

func (id ParticipantID) String() string { return strconv.FormatUint(uint64(id), 10) }

// MatchID is the numeric id of a match.
type MatchID uint64

func (id MatchID) String() string { return strconv.FormatUint(uint64(id), 10) }

// AttachmentID is the numeric id of a match attachment.
type AttachmentID uint64

func (id AttachmentID) String() string { return strconv.FormatUint(uint64(id), 10) }

// TournamentID addresses a tournament either by the numeric id the service
// assigned or by its subdomain/url pair. The numeric form is authoritative:
// every decoded record carries it, the url form only exists so callers can
// reference a tournament they know by its page address. Exactly one of the
// two variants is ever populated.
type TournamentID struct {
	num       uint64
	subdomain string
	url       string
	byURL     bool
}

// NewTournamentID makes the numeric variant.
func NewTournamentID(id uint64) TournamentID {
	return TournamentID{num: id}
}

// TournamentURL makes the subdomain/url variant. Subdomain may be empty for
// tournaments living directly under challonge.com.
func TournamentURL(subdomain, url string) TournamentID {
	return TournamentID{subdomain: subdomain, url: url, byURL: true}
}

// Num returns the numeric id and whether this is the numeric variant.
func (id TournamentID) Num() (uint64, bool) {
	return id.num, !id.byURL
}

// String renders the form the API paths expect: the bare number, or
// "{subdomain}-{url}" (just "{url}" with no subdomain).
func (id TournamentID) String() string {
	if !id.byURL {
		return strconv.FormatUint(id.num, 10)
	}
	if id.subdomain == "" {
		return id.url
	}
	return id.subdomain + "-" + id.url
}
