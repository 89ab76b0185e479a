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
	"strings"

	"golang.org/x/text/language"
)

// Language is the lang parameter of the menu API
type Language string

const (
	German  Language = "de"
	English Language = "en"
)

// keywords pairs every language with the term searched for in that language
var keywords = map[Language]string{
	German:  "pommes",
	English: "french fries",
}

// ParseLanguage accepts "de", "en" and any BCP 47 tag whose base is one of them ("de-CH", "en-GB").
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid language %q: %w", s, err)
	}
	base, _ := tag.Base()
	lang := Language(base.String())
	if _, ok := keywords[lang]; !ok {
		return "", fmt.Errorf("unsupported language %q, use de or en", s)
	}
	return lang, nil
}

// Label is the name shown on the language toggle
func (l Language) Label() string {
	if l == English {
		return "English"
	}
	return "Deutsch"
}

// QueryState is the language and keyword of the next fetch. The two always belong together.
type QueryState struct {
	Language Language `json:"language"`
	Keyword  string   `json:"keyword"`
}

// NewQueryState returns the pair for lang. Unknown languages get German.
func NewQueryState(lang Language) QueryState {
	keyword, ok := keywords[lang]
	if !ok {
		lang, keyword = German, keywords[German]
	}
	return QueryState{Language: lang, Keyword: keyword}
}

// Toggle flips the pair between German and English
func (q QueryState) Toggle() QueryState {
	if q.Language == German {
		return NewQueryState(English)
	}
	return NewQueryState(German)
}

// ToggleLabel is the text of the toggle control, e.g. "Sprache: Deutsch"
func (q QueryState) ToggleLabel() string {
	return "Sprache: " + q.Language.Label()
}
