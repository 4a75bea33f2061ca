package challonge

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New("user", "secret-key")
	c.Base = srv.URL
	return c
}

func TestClient_BasicAuthAndPath(t *testing.T) {
	var gotPath, gotQuery string
	var gotUser, gotPass string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotUser, gotPass, _ = r.BasicAuth()
		io.WriteString(w, sampleTournament)
	})

	_, err := c.GetTournament(context.Background(), TournamentURL("myorg", "weekly42"), IncludeMatches)
	if err != nil {
		t.Fatal(err)
	}
	if gotPath != "/tournaments/myorg-weekly42.json" {
		t.Errorf("path = %q", gotPath)
	}
	if gotUser != "user" || gotPass != "secret-key" {
		t.Errorf("auth = %q/%q", gotUser, gotPass)
	}
	q, _ := url.ParseQuery(gotQuery)
	if q.Get("include_matches") != "1" || q.Get("include_participants") != "0" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestClient_FormBody(t *testing.T) {
	var gotBody, gotCT, gotMethod string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		gotCT = r.Header.Get("Content-Type")
		gotMethod = r.Method
		io.WriteString(w, sampleMatch)
	})

	mu := NewMatchUpdate().SetScores(MatchScores{{3, 1}}).SetWinner(16543993)
	if _, err := c.UpdateMatch(context.Background(), NewTournamentID(1086875), 23575258, mu); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPut {
		t.Errorf("method = %q", gotMethod)
	}
	if gotCT != "application/x-www-form-urlencoded" {
		t.Errorf("content type = %q", gotCT)
	}
	// builder order survives encoding and brackets get escaped
	want := url.QueryEscape("match[scores_csv]") + "=3-1&" + url.QueryEscape("match[winner_id]") + "=16543993"
	if gotBody != want {
		t.Errorf("body = %q, want %q", gotBody, want)
	}
}

func TestClient_ValidationError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"errors": ["Name can't be blank", "URL is already taken"]}`)
	})

	_, err := c.CreateTournament(context.Background(), NewTournamentCreate())
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if ve.Code != http.StatusUnprocessableEntity || len(ve.Errors) != 2 {
		t.Errorf("got %+v", ve)
	}
	// a validation failure is still a status failure
	if !errors.Is(err, ErrValidation) || !errors.Is(err, ErrStatus) {
		t.Error("sentinel matching broken")
	}
}

func TestClient_StatusError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, "HTTP Basic: Access denied.")
	})

	_, err := c.ListTournaments(context.Background(), nil)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("want StatusError, got %v", err)
	}
	if se.Code != http.StatusUnauthorized || !strings.Contains(se.Body, "denied") {
		t.Errorf("got %+v", se)
	}
	if errors.Is(err, ErrValidation) {
		t.Error("plain status must not match ErrValidation")
	}
}

func TestClient_EmptyBodyIsOK(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if err := c.DeleteTournament(context.Background(), NewTournamentID(1)); err != nil {
		t.Fatal(err)
	}
}

func TestClient_SyntaxError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>not json</html>")
	})
	_, err := c.GetTournament(context.Background(), NewTournamentID(1), IncludeAll)
	if !errors.Is(err, ErrSyntax) {
		t.Fatalf("want ErrSyntax, got %v", err)
	}
}

func TestClient_TransportError(t *testing.T) {
	c := New("user", "key")
	c.Base = "http://127.0.0.1:1" // nothing listens there
	_, err := c.ListTournaments(context.Background(), nil)
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("want ErrTransport, got %v", err)
	}
}

func TestClient_RetriesOnceOnTransportError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			// kill the connection mid-response
			hj, ok := w.(http.Hijacker)
			if !ok {
				t.Fatal("no hijacker")
			}
			conn, _, _ := hj.Hijack()
			conn.Close()
			return
		}
		io.WriteString(w, sampleTournament)
	}))
	t.Cleanup(srv.Close)

	c := New("user", "key")
	c.Base = srv.URL
	if _, err := c.GetTournament(context.Background(), NewTournamentID(1086875), IncludeAll); err != nil {
		t.Fatalf("retry did not recover: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d", calls)
	}
}

func TestClient_ListOptionsQuery(t *testing.T) {
	var got url.Values
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		io.WriteString(w, "[]")
	})

	st := TournamentEnded
	ty := DoubleElimination
	opts := &TournamentListOptions{State: &st, Type: &ty, Subdomain: "myorg"}
	if _, err := c.ListTournaments(context.Background(), opts); err != nil {
		t.Fatal(err)
	}
	if got.Get("state") != "ended" {
		t.Errorf("state = %q", got.Get("state"))
	}
	// index filtering wants the underscore spelling
	if got.Get("type") != "double_elimination" {
		t.Errorf("type = %q", got.Get("type"))
	}
	if got.Get("subdomain") != "myorg" {
		t.Errorf("subdomain = %q", got.Get("subdomain"))
	}
	if got.Has("created_after") || got.Has("created_before") {
		t.Error("unset date filters sent")
	}
}
