// internal/challonge/attachment.go
package challonge

import "time"

// Asset is the file half of an attachment. Every field is independently
// optional; like Player, the fields are flattened on the attachment object
// as asset_* keys and only nested here.
type Asset struct {
	FileName    *string
	ContentType *string
	FileSize    *uint64
	URL         *string
}

func decodeAsset(f *fields) Asset {
	return Asset{
		FileName:    f.optStr("asset_file_name"),
		ContentType: f.optStr("asset_content_type"),
		FileSize:    f.optUint("asset_file_size"),
		URL:         f.optStr("asset_url"),
	}
}

// Attachment is a decoded match attachment record.
type Attachment struct {
	ID      AttachmentID
	MatchID MatchID
	UserID  uint64

	// URL may be the empty string, which the service treats as set.
	URL              *string
	Description      *string
	OriginalFileName *string

	Asset Asset

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DecodeAttachment decodes the {"match_attachment": {...}} payload.
func DecodeAttachment(v any) (*Attachment, error) {
	f, err := unwrap(v, "match_attachment")
	if err != nil {
		return nil, err
	}

	a := &Attachment{
		ID:               AttachmentID(f.reqUint("id")),
		MatchID:          MatchID(f.reqUint("match_id")),
		UserID:           f.reqUint("user_id"),
		Description:      f.optStr("description"),
		URL:              f.optStr("url"),
		OriginalFileName: f.optStr("original_file_name"),
		CreatedAt:        f.stamp("created_at"),
		UpdatedAt:        f.stamp("updated_at"),
		Asset:            decodeAsset(f),
	}
	if f.err != nil {
		return nil, f.err
	}
	return a, nil
}

// AttachmentIndex is a match's decoded attachment list.
type AttachmentIndex []Attachment

// DecodeAttachmentIndex decodes a JSON array of attachment payloads,
// preserving order.
func DecodeAttachmentIndex(v any) (AttachmentIndex, error) {
	as, err := decodeSlice(v, func(el any) (Attachment, error) {
		a, err := DecodeAttachment(el)
		if err != nil {
			return Attachment{}, err
		}
		return *a, nil
	})
	if err != nil {
		return nil, err
	}
	return AttachmentIndex(as), nil
}

// AttachmentCreate is the outbound shape for creating or updating an
// attachment. The service requires at least one of the three to be set.
type AttachmentCreate struct {
	Asset       []byte
	URL         *string
	Description *string
}

// NewAttachmentCreate returns an empty attachment builder.
func NewAttachmentCreate() *AttachmentCreate {
	return &AttachmentCreate{}
}

func (ac *AttachmentCreate) SetAsset(data []byte) *AttachmentCreate {
	ac.Asset = data
	return ac
}

func (ac *AttachmentCreate) SetURL(url string) *AttachmentCreate {
	ac.URL = &url
	return ac
}

func (ac *AttachmentCreate) SetDescription(description string) *AttachmentCreate {
	ac.Description = &description
	return ac
}

// Params flattens the builder into the ordered match_attachment[...] field
// list. Unset fields are omitted entirely.
func (ac *AttachmentCreate) Params() []Param {
	var params []Param
	if ac.Asset != nil {
		params = append(params, Param{akey("asset"), string(ac.Asset)})
	}
	if ac.URL != nil {
		params = append(params, Param{akey("url"), *ac.URL})
	}
	if ac.Description != nil {
		params = append(params, Param{akey("description"), *ac.Description})
	}
	return params
}
