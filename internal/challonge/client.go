// internal/challonge/client.go
// HTTP transport and the service method surface. Thin on purpose: every
// method is "encode params, perform call, decode response"; all of the
// interesting behavior lives in the codecs.
package challonge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const apiBase = "https://api.challonge.com/v1"

// Client talks to the Challonge REST API with HTTP basic auth
// (username + API key).
type Client struct {
	Base     string
	Username string
	APIKey   string
	HTTP     *http.Client
}

// New creates a client against the public API endpoint.
func New(username, apiKey string) *Client {
	return &Client{
		Base:     apiBase,
		Username: username,
		APIKey:   apiKey,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

// do performs one call and hands back the parsed JSON body (nil when the
// service sent nothing back). The request is retried once on a transport
// error: the service is known to drop keep-alive connections that idled
// between calls.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []Param) (any, error) {
	resp, err := c.attempt(ctx, method, path, query, body)
	if err != nil {
		resp, err = c.attempt(ctx, method, path, query, body)
	}
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, raw)
	}

	if len(raw) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &SyntaxError{Err: err}
	}
	return v, nil
}

func (c *Client) attempt(ctx context.Context, method, path string, query url.Values, body []Param) (*http.Response, error) {
	u := c.Base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		rd = strings.NewReader(encodeForm(body))
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.Username, c.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return c.HTTP.Do(req)
}

// statusError picks the validation shape ({"errors": [...]}) out of a
// non-2xx body when present, otherwise keeps the raw body.
func statusError(code int, raw []byte) error {
	var ve struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(raw, &ve); err == nil && len(ve.Errors) > 0 {
		return &ValidationError{Code: code, Errors: ve.Errors}
	}
	return &StatusError{Code: code, Body: string(raw)}
}

func includesQuery(q url.Values, inc TournamentIncludes) {
	switch inc {
	case IncludeMatches:
		q.Set("include_participants", "0")
		q.Set("include_matches", "1")
	case IncludeParticipants:
		q.Set("include_participants", "1")
		q.Set("include_matches", "0")
	default:
		q.Set("include_participants", "1")
		q.Set("include_matches", "1")
	}
}

// TournamentListOptions filters the tournament index. Zero fields are not
// sent.
type TournamentListOptions struct {
	State         *TournamentState
	Type          *TournamentType
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Subdomain     string
}

func (o *TournamentListOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.State != nil {
		q.Set("state", o.State.String())
	}
	if o.Type != nil {
		// the index wants the underscore spelling, unlike form bodies
		q.Set("type", o.Type.QueryParam())
	}
	if o.CreatedAfter != nil {
		q.Set("created_after", o.CreatedAfter.Format("2006-01-02"))
	}
	if o.CreatedBefore != nil {
		q.Set("created_before", o.CreatedBefore.Format("2006-01-02"))
	}
	if o.Subdomain != "" {
		q.Set("subdomain", o.Subdomain)
	}
	return q
}

// ListTournaments retrieves the tournaments of the authenticated account.
func (c *Client) ListTournaments(ctx context.Context, opts *TournamentListOptions) (TournamentIndex, error) {
	v, err := c.do(ctx, http.MethodGet, "/tournaments.json", opts.query(), nil)
	if err != nil {
		return nil, err
	}
	return DecodeTournamentIndex(v)
}

// GetTournament retrieves a single tournament record.
func (c *Client) GetTournament(ctx context.Context, id TournamentID, inc TournamentIncludes) (*Tournament, error) {
	q := url.Values{}
	includesQuery(q, inc)
	v, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tournaments/%s.json", id), q, nil)
	if err != nil {
		return nil, err
	}
	return DecodeTournament(v)
}

// CreateTournament creates a new tournament.
func (c *Client) CreateTournament(ctx context.Context, tc *TournamentCreate) (*Tournament, error) {
	v, err := c.do(ctx, http.MethodPost, "/tournaments.json", nil, tc.Params())
	if err != nil {
		return nil, err
	}
	return DecodeTournament(v)
}

// UpdateTournament updates a tournament's attributes.
func (c *Client) UpdateTournament(ctx context.Context, id TournamentID, tc *TournamentCreate) (*Tournament, error) {
	v, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tournaments/%s.json", id), nil, tc.Params())
	if err != nil {
		return nil, err
	}
	return DecodeTournament(v)
}

// DeleteTournament deletes a tournament and everything attached to it.
// There is no undo on the service side.
func (c *Client) DeleteTournament(ctx context.Context, id TournamentID) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/tournaments/%s.json", id), nil, nil)
	return err
}

func (c *Client) tournamentAction(ctx context.Context, id TournamentID, action string, inc TournamentIncludes) error {
	q := url.Values{}
	includesQuery(q, inc)
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tournaments/%s/%s.json", id, action), q, nil)
	return err
}

// ProcessCheckIns closes the check-in window: marks no-shows inactive,
// moves them to bottom seeds and transitions checking_in -> checked_in.
func (c *Client) ProcessCheckIns(ctx context.Context, id TournamentID, inc TournamentIncludes) error {
	return c.tournamentAction(ctx, id, "process_check_ins", inc)
}

// AbortCheckIns reopens start_at/check_in_duration for editing: makes all
// participants active again and transitions back to pending.
func (c *Client) AbortCheckIns(ctx context.Context, id TournamentID, inc TournamentIncludes) error {
	return c.tournamentAction(ctx, id, "abort_check_in", inc)
}

// StartTournament opens first round matches for score reporting. Needs at
// least 2 participants.
func (c *Client) StartTournament(ctx context.Context, id TournamentID, inc TournamentIncludes) error {
	return c.tournamentAction(ctx, id, "start", inc)
}

// FinalizeTournament renders the results permanent. All match scores must
// be in.
func (c *Client) FinalizeTournament(ctx context.Context, id TournamentID, inc TournamentIncludes) error {
	return c.tournamentAction(ctx, id, "finalize", inc)
}

// ResetTournament clears all scores and attachments so participants can be
// edited before starting again.
func (c *Client) ResetTournament(ctx context.Context, id TournamentID, inc TournamentIncludes) error {
	return c.tournamentAction(ctx, id, "reset", inc)
}

// ListParticipants retrieves a tournament's participant list.
func (c *Client) ListParticipants(ctx context.Context, id TournamentID) (ParticipantIndex, error) {
	v, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tournaments/%s/participants.json", id), nil, nil)
	if err != nil {
		return nil, err
	}
	return DecodeParticipantIndex(v)
}

// CreateParticipant adds a participant to a tournament (up until it is
// started).
func (c *Client) CreateParticipant(ctx context.Context, id TournamentID, pc *ParticipantCreate) (*Participant, error) {
	v, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tournaments/%s/participants.json", id), nil, pc.Params())
	if err != nil {
		return nil, err
	}
	return DecodeParticipant(v)
}

// CreateParticipantBulk adds several participants in one call. The service
// rolls all of them back if any entry is invalid.
func (c *Client) CreateParticipantBulk(ctx context.Context, id TournamentID, pcs []ParticipantCreate) error {
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tournaments/%s/participants/bulk_add.json", id), nil, BulkParams(pcs))
	return err
}

// GetParticipant retrieves a single participant record.
func (c *Client) GetParticipant(ctx context.Context, id TournamentID, pid ParticipantID, includeMatches bool) (*Participant, error) {
	q := url.Values{}
	q.Set("include_matches", boolQuery(includeMatches))
	v, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tournaments/%s/participants/%s.json", id, pid), q, nil)
	if err != nil {
		return nil, err
	}
	return DecodeParticipant(v)
}

// UpdateParticipant updates the attributes of a participant.
func (c *Client) UpdateParticipant(ctx context.Context, id TournamentID, pid ParticipantID, pc *ParticipantCreate) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tournaments/%s/participants/%s.json", id, pid), nil, pc.Params())
	return err
}

// CheckInParticipant checks a participant in, setting checked_in_at to now.
func (c *Client) CheckInParticipant(ctx context.Context, id TournamentID, pid ParticipantID) error {
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tournaments/%s/participants/%s/check_in.json", id, pid), nil, nil)
	return err
}

// UndoCheckInParticipant clears a participant's checked_in_at.
func (c *Client) UndoCheckInParticipant(ctx context.Context, id TournamentID, pid ParticipantID) error {
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tournaments/%s/participants/%s/undo_check_in.json", id, pid), nil, nil)
	return err
}

// DeleteParticipant removes a participant before the tournament starts, or
// marks them inactive (forfeiting remaining matches) once underway.
func (c *Client) DeleteParticipant(ctx context.Context, id TournamentID, pid ParticipantID) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/tournaments/%s/participants/%s.json", id, pid), nil, nil)
	return err
}

// RandomizeParticipants shuffles seeds. Only before the tournament starts.
func (c *Client) RandomizeParticipants(ctx context.Context, id TournamentID) error {
	_, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tournaments/%s/participants/randomize.json", id), nil, nil)
	return err
}

// ListMatches retrieves a tournament's match list, optionally filtered by
// state and/or participant.
func (c *Client) ListMatches(ctx context.Context, id TournamentID, state *MatchState, pid *ParticipantID) (MatchIndex, error) {
	q := url.Values{}
	if state != nil {
		q.Set("state", state.String())
	}
	if pid != nil {
		q.Set("participant_id", pid.String())
	}
	v, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tournaments/%s/matches.json", id), q, nil)
	if err != nil {
		return nil, err
	}
	return DecodeMatchIndex(v)
}

// GetMatch retrieves a single match record.
func (c *Client) GetMatch(ctx context.Context, id TournamentID, mid MatchID, includeAttachments bool) (*Match, error) {
	q := url.Values{}
	q.Set("include_attachments", boolQuery(includeAttachments))
	v, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tournaments/%s/matches/%s.json", id, mid), q, nil)
	if err != nil {
		return nil, err
	}
	return DecodeMatch(v)
}

// UpdateMatch submits scores (and optionally the winner) for a match.
func (c *Client) UpdateMatch(ctx context.Context, id TournamentID, mid MatchID, mu *MatchUpdate) (*Match, error) {
	v, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tournaments/%s/matches/%s.json", id, mid), nil, mu.Params())
	if err != nil {
		return nil, err
	}
	return DecodeMatch(v)
}

// ListAttachments retrieves a match's attachments.
func (c *Client) ListAttachments(ctx context.Context, id TournamentID, mid MatchID) (AttachmentIndex, error) {
	v, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tournaments/%s/matches/%s/attachments.json", id, mid), nil, nil)
	if err != nil {
		return nil, err
	}
	return DecodeAttachmentIndex(v)
}

// GetAttachment retrieves a single attachment record.
func (c *Client) GetAttachment(ctx context.Context, id TournamentID, mid MatchID, aid AttachmentID) (*Attachment, error) {
	v, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tournaments/%s/matches/%s/attachments/%s.json", id, mid, aid), nil, nil)
	if err != nil {
		return nil, err
	}
	return DecodeAttachment(v)
}

// CreateAttachment adds a file, link or text attachment to a match. The
// tournament's accept_attachments flag must be on.
func (c *Client) CreateAttachment(ctx context.Context, id TournamentID, mid MatchID, ac *AttachmentCreate) (*Attachment, error) {
	v, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tournaments/%s/matches/%s/attachments.json", id, mid), nil, ac.Params())
	if err != nil {
		return nil, err
	}
	return DecodeAttachment(v)
}

// UpdateAttachment updates the attributes of an attachment.
func (c *Client) UpdateAttachment(ctx context.Context, id TournamentID, mid MatchID, aid AttachmentID, ac *AttachmentCreate) (*Attachment, error) {
	v, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tournaments/%s/matches/%s/attachments/%s.json", id, mid, aid), nil, ac.Params())
	if err != nil {
		return nil, err
	}
	return DecodeAttachment(v)
}

// DeleteAttachment deletes a match attachment.
func (c *Client) DeleteAttachment(ctx context.Context, id TournamentID, mid MatchID, aid AttachmentID) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/tournaments/%s/matches/%s/attachments/%s.json", id, mid, aid), nil, nil)
	return err
}

func boolQuery(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
