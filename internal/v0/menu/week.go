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

import "time"

const dateLayout = "2006-01-02"

// DateRange is the validity window sent with every menu query.
type DateRange struct {
	ValidAfter  time.Time
	ValidBefore time.Time
}

// WeekOf returns the Monday of the week containing now and the Monday two weeks later.
// Both are midnight in the location of now.
func WeekOf(now time.Time) DateRange {
	offset := (int(now.Weekday()) + 6) % 7
	y, m, d := now.Date()
	monday := time.Date(y, m, d-offset, 0, 0, 0, 0, now.Location())
	return DateRange{
		ValidAfter:  monday,
		ValidBefore: monday.AddDate(0, 0, 14),
	}
}

// After is the valid-after query value
func (r DateRange) After() string {
	return r.ValidAfter.Format(dateLayout)
}

// Before is the valid-before query value
func (r DateRange) Before() string {
	return r.ValidBefore.Format(dateLayout)
}

// TodayCode is the API day-of-week-code for now: Monday=1 ... Saturday=6, Sunday=7.
func TodayCode(now time.Time) int {
	if now.Weekday() == time.Sunday {
		return 7
	}
	return int(now.Weekday())
}
