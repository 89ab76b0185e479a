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
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MessageKind names the message block that goes with a state
type MessageKind string

const (
	MessageIdle    MessageKind = "idle"
	MessageLoading MessageKind = "loading"
	MessageError   MessageKind = "error"
	MessageEmpty   MessageKind = "empty"
	MessageResults MessageKind = "results"
)

// Message is the single state text of the widget
type Message struct {
	Kind   MessageKind `json:"kind"`
	Text   []Segment   `json:"text"`
	Detail string      `json:"detail,omitempty"`
}

// Entry is one rendered result
type Entry struct {
	Facility    string    `json:"facility"`
	Name        []Segment `json:"name"`
	Description []Segment `json:"description"`
	Price       string    `json:"price,omitempty"`
	Image       string    `json:"image,omitempty"`
}

// View is everything the widget shows at once. It carries no markup.
type View struct {
	Language    Language `json:"language"`
	ToggleLabel string   `json:"toggleLabel"`
	Message     Message  `json:"message"`
	Entries     []Entry  `json:"entries"`
}

type phrases struct {
	idleBefore, idleAfter       string
	loadingBefore, loadingAfter string
	emptyBefore, emptyAfter     string
	found                       string
	errorDetail                 string
	price                       string
}

var texts = map[Language]phrases{
	German: {
		idleBefore:    "Wo gibt es heute ",
		idleAfter:     "?",
		loadingBefore: "Suche nach ",
		loadingAfter:  "...",
		emptyBefore:   "🍟 nix ",
		emptyAfter:    " gefunden... 🍟",
		found:         "🍟 Gefunden in diesen Mensas:",
		errorDetail:   "🍟 Error...",
		price:         "💰 Preis (Studierende): CHF %.2f",
	},
	English: {
		idleBefore:    "Where are ",
		idleAfter:     " served today?",
		loadingBefore: "Searching for ",
		loadingAfter:  "...",
		emptyBefore:   "🍟 no ",
		emptyAfter:    " found... 🍟",
		found:         "🍟 Found in these cafeterias:",
		errorDetail:   "🍟 Error...",
		price:         "💰 Price (students): CHF %.2f",
	},
}

// Render maps a state and the active query to a view. It has no side effects.
// Messages and emphasis follow the query the state was fetched with, so a toggle
// without a new fetch only changes the toggle label.
func Render(state UIState, live QueryState) View {
	query := live
	if fetched := state.Query(); fetched.Keyword != "" {
		query = fetched
	}
	p, ok := texts[query.Language]
	if !ok {
		p = texts[German]
	}
	word := cases.Title(language.Make(string(query.Language))).String(query.Keyword)
	emphasized := func(before, after string) []Segment {
		return []Segment{{Text: before}, {Text: word, Match: true}, {Text: after}}
	}

	view := View{
		Language:    query.Language,
		ToggleLabel: live.ToggleLabel(),
		Entries:     []Entry{},
	}

	switch state.Phase() {
	case PhaseLoading:
		view.Message = Message{Kind: MessageLoading, Text: emphasized(p.loadingBefore, p.loadingAfter)}
	case PhaseError:
		view.Message = Message{Kind: MessageError, Text: []Segment{{Text: state.Message()}}, Detail: p.errorDetail}
	case PhaseResults:
		results := state.Results()
		if len(results) == 0 {
			view.Message = Message{Kind: MessageEmpty, Text: emphasized(p.emptyBefore, p.emptyAfter)}
			break
		}
		view.Message = Message{Kind: MessageResults, Text: []Segment{{Text: p.found}}}
		for _, r := range results {
			view.Entries = append(view.Entries, renderEntry(r, query.Keyword, p))
		}
	default:
		view.Message = Message{Kind: MessageIdle, Text: emphasized(p.idleBefore, p.idleAfter)}
	}
	return view
}

func renderEntry(r MealRecord, keyword string, p phrases) Entry {
	e := Entry{
		Facility:    r.FacilityName,
		Name:        Highlight(r.MealName, keyword),
		Description: Highlight(r.Description, keyword),
	}
	if r.StudentPrice != nil {
		e.Price = fmt.Sprintf(p.price, *r.StudentPrice)
	}
	if r.ImageURL != nil {
		e.Image = *r.ImageURL
	}
	return e
}
