package challonge

import (
	"errors"
	"testing"
	"time"
)

const sampleParticipant = `{
  "participant": {
    "active": true,
    "checked_in_at": null,
    "created_at": "2015-01-19T16:54:40-05:00",
    "final_rank": null,
    "group_id": null,
    "icon": null,
    "id": 16543993,
    "invitation_id": null,
    "invite_email": null,
    "misc": null,
    "name": "Participant #1",
    "on_waiting_list": false,
    "seed": 1,
    "tournament_id": 1086875,
    "updated_at": "2015-01-19T16:54:40-05:00",
    "challonge_username": null,
    "challonge_email_address_verified": null,
    "removable": true,
    "participatable_or_invitation_attached": false,
    "confirm_remove": true,
    "invitation_pending": false,
    "display_name_with_invitation_email_address": "Participant #1",
    "email_hash": null,
    "username": null,
    "attached_participatable_portrait_url": null,
    "can_check_in": false,
    "checked_in": false,
    "reactivatable": false
  }
}`

func TestDecodeParticipant(t *testing.T) {
	p, err := DecodeParticipant(mustJSON(t, sampleParticipant))
	if err != nil {
		t.Fatal(err)
	}

	if p.ID != 16543993 {
		t.Errorf("id = %d", p.ID)
	}
	if p.TournamentID != 1086875 {
		t.Errorf("tournament_id = %d", p.TournamentID)
	}
	if p.Name != "Participant #1" || p.Seed != 1 {
		t.Errorf("name/seed = %q/%d", p.Name, p.Seed)
	}
	if !p.Active || !p.Removable || !p.ConfirmRemove {
		t.Error("true flags lost")
	}
	if p.OnWaitingList || p.CheckedIn || p.CanCheckIn || p.Reactivatable {
		t.Error("false flags flipped")
	}

	// null scalars come back as zero values, null optionals as nil
	if p.Icon != "" || p.Misc != "" || p.ChallongeUsername != "" || p.EmailHash != "" {
		t.Error("null strings not zeroed")
	}
	if p.FinalRank != nil || p.GroupID != nil || p.InvitationID != nil {
		t.Error("null optionals not nil")
	}
	if p.CheckedInAt != nil {
		t.Errorf("checked_in_at = %v", p.CheckedInAt)
	}
	if p.DisplayNameWithInvitationEmailAddress != "Participant #1" {
		t.Errorf("display name = %q", p.DisplayNameWithInvitationEmailAddress)
	}

	want := time.Date(2015, 1, 19, 16, 54, 40, 0, time.FixedZone("", -5*3600))
	if !p.CreatedAt.Equal(want) || !p.UpdatedAt.Equal(want) {
		t.Errorf("stamps = %v / %v", p.CreatedAt, p.UpdatedAt)
	}
}

func TestDecodeParticipant_RequiredID(t *testing.T) {
	_, err := DecodeParticipant(mustJSON(t, `{"participant": {"id": null, "seed": 1, "tournament_id": 1}}`))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("want ErrDecode for null id, got %v", err)
	}
}

func TestDecodeParticipantIndex(t *testing.T) {
	payload := `[` + sampleParticipant + `,` + sampleParticipant + `]`
	idx, err := DecodeParticipantIndex(mustJSON(t, payload))
	if err != nil {
		t.Fatal(err)
	}
	if len(idx) != 2 {
		t.Fatalf("len = %d", len(idx))
	}
	if idx[0].ID != idx[1].ID {
		t.Error("elements differ")
	}

	if _, err := DecodeParticipantIndex(mustJSON(t, `[{"wrong": {}}]`)); !errors.Is(err, ErrDecode) {
		t.Fatalf("bad element must fail the index, got %v", err)
	}
}

func TestParticipantCreate_Params(t *testing.T) {
	pc := NewParticipantCreate().
		SetName("jose").
		SetEmail("jose@example.com").
		SetSeed(3).
		SetMisc("captain")

	m := paramsMap(t, pc.Params())
	want := map[string]string{
		"participant[email]": "jose@example.com",
		"participant[seed]":  "3",
		"participant[misc]":  "captain",
		"participant[name]":  "jose",
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("%s = %q, want %q", k, m[k], v)
		}
	}
	if _, ok := m["participant[challonge_username]"]; ok {
		t.Error("unset challonge_username must be omitted")
	}
}

func TestParticipantBulkParams(t *testing.T) {
	pcs := []ParticipantCreate{
		*NewParticipantCreate().SetName("a"),
		*NewParticipantCreate().SetName("b").SetSeed(2),
	}
	params := BulkParams(pcs)

	var names, seeds []string
	for _, p := range params {
		switch p.Key {
		case "participant[][name]":
			names = append(names, p.Value)
		case "participant[][seed]":
			seeds = append(seeds, p.Value)
		}
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v", names)
	}
	if len(seeds) != 2 || seeds[0] != "1" || seeds[1] != "2" {
		t.Errorf("seeds = %v", seeds)
	}
}
