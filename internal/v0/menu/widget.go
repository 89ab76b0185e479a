//   This project is the cafeteria menu widget of the OpenSourceDUTH team. It searches today's university cafeteria menus for a keyword.
//   Pommes Copyright (C) 2025 OpenSourceDUTH
//       This program is free software: you can redistribute it and/or modify
//       it under the terms of the GNU General Public License as published by
//       the Free Software Foundation, either version 3 of the License, or
//       (at your option) any later version.

//       This program is distributed in the hope that it will be useful,
//       but WITHOUT ANY WARRANTY; without even the implied warranty of
//       MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//       GNU General Public License for more details.

//       You should have received a copy of the GNU General Public License
//       along with this program.  If not, see <https://www.gnu.org/licenses/>.
package menu

import (
	"context"
	"log"
	"sync"
	"time"
)

// Search runs one query cycle without touching any widget state
func Search(ctx context.Context, fetcher Fetcher, filter Filter, now time.Time, query QueryState) ([]MealRecord, error) {
	payload, err := fetcher.Fetch(ctx, WeekOf(now), query.Language)
	if err != nil {
		return nil, err
	}
	return filter.Extract(payload, query.Keyword, TodayCode(now)), nil
}

// Widget holds the query pair and the state currently on screen.
// The lock only covers swapping values; fetches run outside it and the last one to finish wins.
type Widget struct {
	fetcher Fetcher
	filter  Filter
	now     func() time.Time

	mu    sync.Mutex
	query QueryState
	state UIState
}

type Option func(*Widget)

// WithClock sets the time source used for the date range and today's code
func WithClock(now func() time.Time) Option {
	return func(w *Widget) {
		w.now = now
	}
}

func WithLanguage(lang Language) Option {
	return func(w *Widget) {
		w.query = NewQueryState(lang)
	}
}

func NewWidget(fetcher Fetcher, filter Filter, opts ...Option) *Widget {
	w := &Widget{
		fetcher: fetcher,
		filter:  filter,
		now:     time.Now,
		query:   NewQueryState(German),
		state:   Idle(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Widget) State() UIState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Widget) Query() QueryState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.query
}

// View renders the current state. The toggle label follows the current query.
func (w *Widget) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Render(w.state, w.query)
}

// ToggleLanguage flips the query pair. It does not fetch.
func (w *Widget) ToggleLanguage() QueryState {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.query = w.query.Toggle()
	return w.query
}

// Fetch switches to Loading right away, queries the API with the current pair and
// replaces the state with the outcome. Connection errors end in the error state.
func (w *Widget) Fetch(ctx context.Context) UIState {
	w.mu.Lock()
	query := w.query
	w.state = Loading().For(query)
	w.mu.Unlock()

	results, err := Search(ctx, w.fetcher, w.filter, w.now(), query)
	if err != nil {
		log.Printf("menu fetch (%s) failed: %v", query.Language, err)
	}
	next := Settle(results, err).For(query)

	w.mu.Lock()
	w.state = next
	w.mu.Unlock()
	return next
}

// TodayMenu is the answer of a stateless search
type TodayMenu struct {
	Date        string       `json:"date"`
	TodayCode   int          `json:"todayCode"`
	Language    Language     `json:"language"`
	Keyword     string       `json:"keyword"`
	ValidAfter  string       `json:"validAfter"`
	ValidBefore string       `json:"validBefore"`
	Meals       []MealRecord `json:"meals"`
}

// Search queries today's menu for lang with the widget's fetcher, filter and clock.
// The widget state and query stay as they are.
func (w *Widget) Search(ctx context.Context, lang Language) (TodayMenu, error) {
	now := w.now()
	query := NewQueryState(lang)
	week := WeekOf(now)
	meals, err := Search(ctx, w.fetcher, w.filter, now, query)
	if err != nil {
		return TodayMenu{}, err
	}
	return TodayMenu{
		Date:        now.Format(dateLayout),
		TodayCode:   TodayCode(now),
		Language:    query.Language,
		Keyword:     query.Keyword,
		ValidAfter:  week.After(),
		ValidBefore: week.Before(),
		Meals:       meals,
	}, nil
}
