/*
This project is the cafeteria menu widget of the OpenSourceDUTH team. It searches today's university cafeteria menus for a keyword.
Pommes Copyright (C) 2025 OpenSourceDUTH
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package menu

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var emphasis = color.New(color.FgYellow, color.Bold)

// WriteText prints a view for a terminal. Matches are bold yellow when the output supports color.
func WriteText(w io.Writer, v View) error {
	var b strings.Builder
	b.WriteString(joinSegments(v.Message.Text))
	b.WriteString("\n")
	if v.Message.Detail != "" {
		b.WriteString(v.Message.Detail + "\n")
	}
	for _, e := range v.Entries {
		b.WriteString("\n")
		b.WriteString(e.Facility + "\n")
		b.WriteString("  " + joinSegments(e.Name) + "\n")
		if len(e.Description) > 0 {
			b.WriteString("  " + joinSegments(e.Description) + "\n")
		}
		if e.Price != "" {
			b.WriteString("  " + e.Price + "\n")
		}
		if e.Image != "" {
			b.WriteString("  " + e.Image + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write view: %w", err)
	}
	return nil
}

func joinSegments(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Match {
			b.WriteString(emphasis.Sprint(s.Text))
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}
