// internal/challonge/participant.go
package challonge

import "time"

// Participant is a decoded tournament participant record.
type Participant struct {
	ID           ParticipantID
	TournamentID uint64
	Name         string
	Seed         uint64

	Active        bool
	OnWaitingList bool
	CheckedIn     bool
	CanCheckIn    bool
	Removable     bool
	ConfirmRemove bool
	Reactivatable bool

	FinalRank    *uint64
	GroupID      *uint64
	InvitationID *uint64

	Icon        string
	InviteEmail string
	Misc        string

	ChallongeUsername             string
	ChallongeEmailAddressVerified string
	Username                      string
	EmailHash                     string

	InvitationPending                     bool
	ParticipatableOrInvitationAttached    bool
	DisplayNameWithInvitationEmailAddress string
	AttachedParticipatablePortraitURL     string

	CheckedInAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DecodeParticipant decodes the {"participant": {...}} payload.
func DecodeParticipant(v any) (*Participant, error) {
	f, err := unwrap(v, "participant")
	if err != nil {
		return nil, err
	}

	p := &Participant{
		ID:                                    ParticipantID(f.reqUint("id")),
		TournamentID:                          f.reqUint("tournament_id"),
		Name:                                  f.str("name"),
		Seed:                                  f.reqUint("seed"),
		Active:                                f.boolean("active"),
		OnWaitingList:                         f.boolean("on_waiting_list"),
		CheckedIn:                             f.boolean("checked_in"),
		CanCheckIn:                            f.boolean("can_check_in"),
		Removable:                             f.boolean("removable"),
		ConfirmRemove:                         f.boolean("confirm_remove"),
		Reactivatable:                         f.boolean("reactivatable"),
		FinalRank:                             f.optUint("final_rank"),
		GroupID:                               f.optUint("group_id"),
		InvitationID:                          f.optUint("invitation_id"),
		Icon:                                  f.str("icon"),
		InviteEmail:                           f.str("invite_email"),
		Misc:                                  f.str("misc"),
		ChallongeUsername:                     f.str("challonge_username"),
		ChallongeEmailAddressVerified:         f.str("challonge_email_address_verified"),
		Username:                              f.str("username"),
		EmailHash:                             f.str("email_hash"),
		InvitationPending:                     f.boolean("invitation_pending"),
		ParticipatableOrInvitationAttached:    f.boolean("participatable_or_invitation_attached"),
		DisplayNameWithInvitationEmailAddress: f.str("display_name_with_invitation_email_address"),
		AttachedParticipatablePortraitURL:     f.str("attached_participatable_portrait_url"),
		CheckedInAt:                           f.optStamp("checked_in_at"),
		CreatedAt:                             f.stamp("created_at"),
		UpdatedAt:                             f.stamp("updated_at"),
	}
	if f.err != nil {
		return nil, f.err
	}
	return p, nil
}

// ParticipantIndex is a tournament's decoded participant list.
type ParticipantIndex []Participant

// DecodeParticipantIndex decodes a JSON array of participant payloads,
// preserving order.
func DecodeParticipantIndex(v any) (ParticipantIndex, error) {
	ps, err := decodeSlice(v, func(el any) (Participant, error) {
		p, err := DecodeParticipant(el)
		if err != nil {
			return Participant{}, err
		}
		return *p, nil
	})
	if err != nil {
		return nil, err
	}
	return ParticipantIndex(ps), nil
}

// ParticipantCreate is the outbound shape for adding (or updating) a
// participant. Name or ChallongeUsername may stand in for the email.
type ParticipantCreate struct {
	Name              *string
	ChallongeUsername *string
	Email             string
	Seed              uint64
	Misc              string
}

// NewParticipantCreate returns a builder with the default seed of 1.
func NewParticipantCreate() *ParticipantCreate {
	return &ParticipantCreate{Seed: 1}
}

func (pc *ParticipantCreate) SetName(name string) *ParticipantCreate {
	pc.Name = &name
	return pc
}

func (pc *ParticipantCreate) SetChallongeUsername(username string) *ParticipantCreate {
	pc.ChallongeUsername = &username
	return pc
}

func (pc *ParticipantCreate) SetEmail(email string) *ParticipantCreate {
	pc.Email = email
	return pc
}

func (pc *ParticipantCreate) SetSeed(seed uint64) *ParticipantCreate {
	pc.Seed = seed
	return pc
}

func (pc *ParticipantCreate) SetMisc(misc string) *ParticipantCreate {
	pc.Misc = misc
	return pc
}

// Params flattens the builder into the ordered participant[...] field list.
func (pc *ParticipantCreate) Params() []Param {
	params := []Param{
		{pkey("email"), pc.Email},
		{pkey("seed"), fmtUint(pc.Seed)},
		{pkey("misc"), pc.Misc},
	}
	if pc.Name != nil {
		params = append(params, Param{pkey("name"), *pc.Name})
	}
	if pc.ChallongeUsername != nil {
		params = append(params, Param{pkey("challonge_username"), *pc.ChallongeUsername})
	}
	return params
}

// BulkParams flattens several builders into the repeated participant[][...]
// convention of the bulk add endpoint.
func BulkParams(pcs []ParticipantCreate) []Param {
	var params []Param
	for _, pc := range pcs {
		params = append(params,
			Param{pskey("email"), pc.Email},
			Param{pskey("seed"), fmtUint(pc.Seed)},
			Param{pskey("misc"), pc.Misc},
		)
		if pc.Name != nil {
			params = append(params, Param{pskey("name"), *pc.Name})
		}
		if pc.ChallongeUsername != nil {
			params = append(params, Param{pskey("challonge_username"), *pc.ChallongeUsername})
		}
	}
	return params
}
