package menu

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func testWeek() DateRange {
	return WeekOf(time.Date(2026, time.October, 21, 12, 0, 0, 0, time.UTC))
}

func TestClientFetchSendsQueryParameters(t *testing.T) {
	t.Parallel()

	var got url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"weekly-rota-array": [{"facility-id": 9}]}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	payload, err := c.Fetch(context.Background(), testWeek(), English)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(payload.WeeklyRotas) != 1 || payload.WeeklyRotas[0].FacilityID != 9 {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	want := map[string]string{
		"client-id":    DefaultClientID,
		"lang":         "en",
		"rs-first":     "0",
		"rs-size":      "50",
		"valid-after":  "2026-10-19",
		"valid-before": "2026-11-02",
	}
	for key, value := range want {
		if got.Get(key) != value {
			t.Fatalf("query %s = %q, want %q (all: %v)", key, got.Get(key), value, got)
		}
	}
}

func TestClientURLKeepsBaseQueryAndOverrides(t *testing.T) {
	t.Parallel()

	c := &Client{BaseURL: "https://menus.example/v1/weeklyrotas?trace=1", ClientID: "duth", PageSize: 10}
	raw, err := c.URL(testWeek(), German)
	if err != nil {
		t.Fatalf("url: %v", err)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	q := u.Query()
	if u.Host != "menus.example" || q.Get("trace") != "1" || q.Get("client-id") != "duth" || q.Get("rs-size") != "10" || q.Get("lang") != "de" {
		t.Fatalf("unexpected url %q", raw)
	}
}

func TestClientFetchFailuresAreConnectionErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{}`},
		{name: "not found", status: http.StatusNotFound, body: `not here`},
		{name: "html body", status: http.StatusOK, body: `<html>maintenance</html>`},
		{name: "empty body", status: http.StatusOK, body: ``},
		{name: "wrong shape", status: http.StatusOK, body: `{"weekly-rota-array": "nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
			_, err := c.Fetch(context.Background(), testWeek(), German)
			var connErr *ConnectionError
			if !errors.As(err, &connErr) {
				t.Fatalf("expected ConnectionError, got %v", err)
			}
		})
	}
}

func TestClientFetchUnreachableServer(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL
	ts.Close()

	c := &Client{BaseURL: base}
	_, err := c.Fetch(context.Background(), testWeek(), German)
	var connErr *ConnectionError
	if !errors.As(err, &connErr) || connErr.Op != "execute request" {
		t.Fatalf("expected execute request ConnectionError, got %v", err)
	}
}

func TestClientFetchToleratesMissingKeys(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{}`, `null`, `{"weekly-rota-array": null}`, `{"weekly-rota-array": [{}]}`} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
		payload, err := c.Fetch(context.Background(), testWeek(), German)
		ts.Close()
		if err != nil {
			t.Fatalf("body %s: %v", body, err)
		}
		if got := Extract(payload, "pommes", 3); len(got) != 0 {
			t.Fatalf("body %s: expected no matches, got %+v", body, got)
		}
	}
}
