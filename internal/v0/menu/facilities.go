package menu

import "fmt"

// FacilityDirectory maps API facility ids to display names
type FacilityDirectory map[int]string

// DefaultFacilities lists the cafeterias known by id
var DefaultFacilities = FacilityDirectory{
	3:  "Clausius-Bar",
	5:  "Dozentenfoyer",
	7:  "Food&Lab",
	8:  "Archimedes",
	9:  "Polyterasse",
	10: "Polysnack",
	11: "Tannenbar",
	14: "Alumni quattro Lounge",
	16: "Bistro HPI",
	17: "food market - green day",
	18: "food market - grill bbQ",
	19: "food market - pizza pasta day",
	20: "Fusion meal",
	22: "Rice-UP",
	23: "Octavo",
	27: "Science Lounge (ACHTUNG, in Basel)",
	28: "Flavour Kitchen (ACHTUNG, in Basel)",
}

// Name returns the display name for id, "Mensa-ID {id}" when unknown
func (d FacilityDirectory) Name(id int) string {
	if name, ok := d[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Mensa-ID %d", id)
}

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
