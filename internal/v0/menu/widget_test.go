package menu

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeFetcher answers with a fixed payload or error and records its calls
type fakeFetcher struct {
	mu      sync.Mutex
	payload *Payload
	err     error
	calls   []Language
	weeks   []DateRange
	during  func()
}

func (f *fakeFetcher) Fetch(ctx context.Context, week DateRange, lang Language) (*Payload, error) {
	f.mu.Lock()
	f.calls = append(f.calls, lang)
	f.weeks = append(f.weeks, week)
	during := f.during
	f.mu.Unlock()
	if during != nil {
		during()
	}
	return f.payload, f.err
}

// Wednesday, day-of-week-code 3
func wednesday() time.Time {
	return time.Date(2026, time.October, 21, 11, 30, 0, 0, time.UTC)
}

func TestWidgetFetchResults(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{payload: decodePayload(t, polyterassePayload)}
	w := NewWidget(fetcher, DefaultFilter, WithClock(wednesday))

	if w.State().Phase() != PhaseIdle {
		t.Fatalf("new widget should be idle")
	}
	state := w.Fetch(context.Background())
	if state.Phase() != PhaseResults || len(state.Results()) != 1 {
		t.Fatalf("state = %+v", state)
	}
	if got := state.Results()[0]; got.FacilityName != "Polyterasse" || got.MealName != "Pommes Frites" {
		t.Fatalf("record = %+v", got)
	}
	if w.State().Phase() != PhaseResults {
		t.Fatalf("widget state not replaced")
	}
	if fetcher.calls[0] != German || fetcher.weeks[0].After() != "2026-10-19" || fetcher.weeks[0].Before() != "2026-11-02" {
		t.Fatalf("fetch called with %v %+v", fetcher.calls, fetcher.weeks)
	}
}

func TestWidgetLoadingBeforeNetworkCall(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{err: &ConnectionError{Op: "execute request", Err: errors.New("down")}}
	w := NewWidget(fetcher, DefaultFilter, WithClock(wednesday))
	w.state = Loaded(sampleResults())

	var seen UIState
	fetcher.during = func() { seen = w.State() }
	w.Fetch(context.Background())

	if seen.Phase() != PhaseLoading || len(seen.Results()) != 0 {
		t.Fatalf("state during fetch = %+v", seen)
	}
}

func TestWidgetFetchFailure(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{err: &ConnectionError{Op: "execute request", Err: errors.New("connection refused")}}
	w := NewWidget(fetcher, DefaultFilter, WithClock(wednesday))

	state := w.Fetch(context.Background())
	if state.Phase() != PhaseError || state.Message() != "Verbindung fehlgeschlagen" || len(state.Results()) != 0 {
		t.Fatalf("state = %+v", state)
	}
	v := w.View()
	if v.Message.Kind != MessageError || len(v.Entries) != 0 {
		t.Fatalf("view = %+v", v)
	}
}

func TestWidgetFetchNoMatches(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{payload: &Payload{}}
	w := NewWidget(fetcher, DefaultFilter, WithClock(wednesday))

	state := w.Fetch(context.Background())
	if state.Phase() != PhaseResults || len(state.Results()) != 0 {
		t.Fatalf("state = %+v", state)
	}
	if v := w.View(); v.Message.Kind != MessageEmpty {
		t.Fatalf("expected the none found message, got %+v", v.Message)
	}
}

func TestWidgetToggleDoesNotFetch(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{payload: &Payload{}}
	w := NewWidget(fetcher, DefaultFilter, WithClock(wednesday))

	q := w.ToggleLanguage()
	if q.Language != English || q.Keyword != "french fries" || w.Query() != q {
		t.Fatalf("toggled query = %+v", q)
	}
	if len(fetcher.calls) != 0 || w.State().Phase() != PhaseIdle {
		t.Fatalf("toggle must not fetch")
	}

	w.Fetch(context.Background())
	if fetcher.calls[0] != English {
		t.Fatalf("fetch used %v, want en", fetcher.calls)
	}
	if w.ToggleLanguage() != NewQueryState(German) {
		t.Fatalf("second toggle should restore German")
	}
}

func TestWidgetToggleKeepsFetchedEmphasis(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{payload: decodePayload(t, polyterassePayload)}
	w := NewWidget(fetcher, DefaultFilter, WithClock(wednesday))
	w.Fetch(context.Background())
	w.ToggleLanguage()

	v := w.View()
	if v.ToggleLabel != "Sprache: English" {
		t.Fatalf("toggle label = %q", v.ToggleLabel)
	}
	if len(v.Entries) != 1 {
		t.Fatalf("entries = %+v", v.Entries)
	}
	if got := matched(v.Entries[0].Name); len(got) != 1 || got[0] != "Pommes" {
		t.Fatalf("emphasis after toggle = %v, want [Pommes]", got)
	}
	if v.Message.Kind != MessageResults || plain(v.Message.Text) != "🍟 Gefunden in diesen Mensas:" {
		t.Fatalf("message = %+v", v.Message)
	}
}

func TestWidgetToggleKeepsFetchedEmptyMessage(t *testing.T) {
	t.Parallel()

	w := NewWidget(&fakeFetcher{payload: &Payload{}}, DefaultFilter, WithClock(wednesday))
	w.Fetch(context.Background())
	w.ToggleLanguage()

	v := w.View()
	if v.Message.Kind != MessageEmpty || plain(v.Message.Text) != "🍟 nix Pommes gefunden... 🍟" {
		t.Fatalf("message after toggle = %q", plain(v.Message.Text))
	}
	if v.Language != German || v.ToggleLabel != "Sprache: English" {
		t.Fatalf("view = %+v", v)
	}
	if w.State().Query() != NewQueryState(German) {
		t.Fatalf("state query = %+v", w.State().Query())
	}
}

func TestWidgetLastFetchToFinishWins(t *testing.T) {
	t.Parallel()

	slow := &blockingFetcher{release: make(chan struct{}), started: make(chan struct{})}
	w := NewWidget(slow, DefaultFilter, WithClock(wednesday))

	done := make(chan UIState)
	go func() { done <- w.Fetch(context.Background()) }()
	<-slow.started

	// A second fetch finishes first with results
	slow.mu.Lock()
	slow.payload = decodePayload(t, polyterassePayload)
	slow.mu.Unlock()
	if s := w.Fetch(context.Background()); s.Phase() != PhaseResults || len(s.Results()) != 1 {
		t.Fatalf("second fetch = %+v", s)
	}

	// The first one fails afterwards and overwrites it
	close(slow.release)
	if s := <-done; s.Phase() != PhaseError {
		t.Fatalf("first fetch = %+v", s)
	}
	if w.State().Phase() != PhaseError {
		t.Fatalf("final state = %+v, want the last settled fetch", w.State())
	}
}

// blockingFetcher holds its first call until release is closed, then fails it
type blockingFetcher struct {
	mu      sync.Mutex
	n       int
	payload *Payload
	release chan struct{}
	started chan struct{}
}

func (b *blockingFetcher) Fetch(ctx context.Context, week DateRange, lang Language) (*Payload, error) {
	b.mu.Lock()
	b.n++
	first := b.n == 1
	payload := b.payload
	b.mu.Unlock()
	if first {
		close(b.started)
		<-b.release
		return nil, &ConnectionError{Op: "execute request", Err: errors.New("timeout")}
	}
	return payload, nil
}

func TestWidgetSearchLeavesStateAlone(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{payload: decodePayload(t, polyterassePayload)}
	w := NewWidget(fetcher, DefaultFilter, WithClock(wednesday))

	today, err := w.Search(context.Background(), English)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if today.Date != "2026-10-21" || today.TodayCode != 3 || today.Keyword != "french fries" || today.ValidAfter != "2026-10-19" {
		t.Fatalf("today = %+v", today)
	}
	// English keyword does not match the German meal name
	if len(today.Meals) != 0 {
		t.Fatalf("meals = %+v", today.Meals)
	}
	if w.State().Phase() != PhaseIdle || w.Query().Language != German {
		t.Fatalf("search changed the widget")
	}
}
