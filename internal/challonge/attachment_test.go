package challonge

import (
	"errors"
	"testing"
)

const sampleAttachment = `{
  "match_attachment": {
    "id": 165418,
    "match_id": 65187924,
    "user_id": 979950,
    "description": "discord",
    "url": "",
    "original_file_name": null,
    "created_at": "2016-09-23T13:54:01.353-04:00",
    "updated_at": "2016-09-23T13:54:01.353-04:00",
    "asset_file_name": null,
    "asset_content_type": null,
    "asset_file_size": null,
    "asset_url": null
  }
}`

func TestDecodeAttachment(t *testing.T) {
	a, err := DecodeAttachment(mustJSON(t, sampleAttachment))
	if err != nil {
		t.Fatal(err)
	}

	if a.ID != 165418 || a.MatchID != 65187924 || a.UserID != 979950 {
		t.Errorf("ids = %d/%d/%d", a.ID, a.MatchID, a.UserID)
	}
	if a.Description == nil || *a.Description != "discord" {
		t.Errorf("description = %v", a.Description)
	}
	// empty string is set, null is not
	if a.URL == nil || *a.URL != "" {
		t.Errorf("url = %v", a.URL)
	}
	if a.OriginalFileName != nil {
		t.Errorf("original_file_name = %v", a.OriginalFileName)
	}
	if a.Asset.FileName != nil || a.Asset.ContentType != nil || a.Asset.FileSize != nil || a.Asset.URL != nil {
		t.Errorf("asset = %+v", a.Asset)
	}
	if a.CreatedAt.IsZero() || !a.CreatedAt.Equal(a.UpdatedAt) {
		t.Errorf("stamps = %v / %v", a.CreatedAt, a.UpdatedAt)
	}
}

func TestDecodeAttachment_WithAsset(t *testing.T) {
	payload := `{
	  "match_attachment": {
	    "id": 1, "match_id": 2, "user_id": 3,
	    "description": null, "url": null, "original_file_name": "shot.png",
	    "created_at": "2016-09-23T13:54:01.353-04:00",
	    "updated_at": "2016-09-23T13:54:01.353-04:00",
	    "asset_file_name": "shot.png",
	    "asset_content_type": "image/png",
	    "asset_file_size": 52428,
	    "asset_url": "//s3.amazonaws.com/challonge_app/shot.png"
	  }
	}`
	a, err := DecodeAttachment(mustJSON(t, payload))
	if err != nil {
		t.Fatal(err)
	}
	if a.Asset.FileName == nil || *a.Asset.FileName != "shot.png" {
		t.Errorf("asset file name = %v", a.Asset.FileName)
	}
	if a.Asset.ContentType == nil || *a.Asset.ContentType != "image/png" {
		t.Errorf("asset content type = %v", a.Asset.ContentType)
	}
	if a.Asset.FileSize == nil || *a.Asset.FileSize != 52428 {
		t.Errorf("asset file size = %v", a.Asset.FileSize)
	}
	if a.Asset.URL == nil || *a.Asset.URL != "//s3.amazonaws.com/challonge_app/shot.png" {
		t.Errorf("asset url = %v", a.Asset.URL)
	}
	if a.Description != nil || a.URL != nil {
		t.Error("null description/url not nil")
	}
}

func TestDecodeAttachment_RequiredIDs(t *testing.T) {
	_, err := DecodeAttachment(mustJSON(t, `{"match_attachment": {"id": 1, "match_id": null, "user_id": 3}}`))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("want ErrDecode for null match_id, got %v", err)
	}
}

func TestDecodeAttachmentIndex(t *testing.T) {
	second := `{
	  "match_attachment": {
	    "id": 165419, "match_id": 65187924, "user_id": 979950,
	    "description": "second", "url": null, "original_file_name": null,
	    "created_at": "2016-09-23T13:55:00.000-04:00",
	    "updated_at": "2016-09-23T13:55:00.000-04:00",
	    "asset_file_name": null, "asset_content_type": null,
	    "asset_file_size": null, "asset_url": null
	  }
	}`
	idx, err := DecodeAttachmentIndex(mustJSON(t, `[`+sampleAttachment+`,`+second+`]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(idx) != 2 {
		t.Fatalf("len = %d", len(idx))
	}
	if idx[0].ID != 165418 || idx[1].ID != 165419 {
		t.Errorf("order lost: %d, %d", idx[0].ID, idx[1].ID)
	}
}

func TestAttachmentCreate_Params(t *testing.T) {
	ac := NewAttachmentCreate().SetURL("https://example.com/vod").SetDescription("vod link")
	m := paramsMap(t, ac.Params())
	if m["match_attachment[url]"] != "https://example.com/vod" {
		t.Errorf("url = %q", m["match_attachment[url]"])
	}
	if m["match_attachment[description]"] != "vod link" {
		t.Errorf("description = %q", m["match_attachment[description]"])
	}
	if _, ok := m["match_attachment[asset]"]; ok {
		t.Error("unset asset must be omitted")
	}

	if got := NewAttachmentCreate().Params(); len(got) != 0 {
		t.Errorf("empty builder emitted %v", got)
	}
}
