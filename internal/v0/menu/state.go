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

import "encoding/json"

// Phase tells which of the four widget states is active
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseResults:
		return "results"
	default:
		return "idle"
	}
}

// UIState is an immutable snapshot of the widget. A transition builds a new value.
type UIState struct {
	phase   Phase
	message string
	results []MealRecord
	query   QueryState
}

func Idle() UIState {
	return UIState{phase: PhaseIdle}
}

// Loading drops any previous results or error
func Loading() UIState {
	return UIState{phase: PhaseLoading}
}

func Failed(message string) UIState {
	return UIState{phase: PhaseError, message: message}
}

// Loaded holds a copy of results, empty when nothing matched
func Loaded(results []MealRecord) UIState {
	out := make([]MealRecord, len(results))
	copy(out, results)
	return UIState{phase: PhaseResults, results: out}
}

// Settle maps the outcome of a fetch to its terminal state
func Settle(results []MealRecord, err error) UIState {
	if err != nil {
		return Failed(ConnectionFailedMessage)
	}
	return Loaded(results)
}

// For stamps the state with the query the fetch ran with
func (s UIState) For(q QueryState) UIState {
	s.query = q
	return s
}

// Query is the pair the state was fetched with, zero for Idle
func (s UIState) Query() QueryState {
	return s.query
}

func (s UIState) Phase() Phase {
	return s.phase
}

func (s UIState) Message() string {
	return s.message
}

// Results returns a copy so callers cannot change the snapshot
func (s UIState) Results() []MealRecord {
	out := make([]MealRecord, len(s.results))
	copy(out, s.results)
	return out
}

func (s UIState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Phase   string       `json:"phase"`
		Message string       `json:"message,omitempty"`
		Results []MealRecord `json:"results"`
		Query   *QueryState  `json:"query,omitempty"`
	}{
		Phase:   s.phase.String(),
		Message: s.message,
		Results: s.Results(),
		Query:   queryOrNil(s.query),
	})
}

func queryOrNil(q QueryState) *QueryState {
	if q.Keyword == "" {
		return nil
	}
	return &q
}
