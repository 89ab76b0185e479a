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

import "strings"

// DefaultPlaceholderImage is served by the widget itself, see RegisterPages
const DefaultPlaceholderImage = "/assets/pommes.svg"

// Filter turns a payload into today's matching meals
type Filter struct {
	Facilities FacilityDirectory
	// PlaceholderImage replaces a missing image-url. Empty leaves the image out.
	PlaceholderImage string
}

// DefaultFilter uses the built in facility table and the bundled placeholder
var DefaultFilter = Filter{
	Facilities:       DefaultFacilities,
	PlaceholderImage: DefaultPlaceholderImage,
}

// Extract runs DefaultFilter.Extract
func Extract(payload *Payload, keyword string, todayCode int) []MealRecord {
	return DefaultFilter.Extract(payload, keyword, todayCode)
}

// Extract walks rota, day, opening hour, meal time and line, keeping the meals of todayCode whose
// name or description contains keyword. Order follows the payload. The result is never nil.
func (f Filter) Extract(payload *Payload, keyword string, todayCode int) []MealRecord {
	matches := []MealRecord{}
	if payload == nil {
		return matches
	}
	for _, rota := range payload.WeeklyRotas {
		facility := f.facilityName(rota.FacilityID)

		for _, day := range rota.Days {
			if day.Code != todayCode {
				continue
			}
			for _, open := range day.OpeningHours {
				for _, mealTime := range open.MealTimes {
					for _, line := range mealTime.Lines {
						meal := line.Meal
						if meal == nil {
							meal = &Meal{}
						}
						if !containsKeyword(meal.Name, keyword) && !containsKeyword(meal.Description, keyword) {
							continue
						}
						matches = append(matches, MealRecord{
							FacilityName: facility,
							MealName:     meal.Name,
							Description:  meal.Description,
							StudentPrice: studentPrice(meal.Prices),
							ImageURL:     f.image(meal.ImageURL),
						})
					}
				}
			}
		}
	}
	return matches
}

func (f Filter) facilityName(id int) string {
	if f.Facilities == nil {
		return DefaultFacilities.Name(id)
	}
	return f.Facilities.Name(id)
}

func (f Filter) image(url string) *string {
	if url = strings.TrimSpace(url); url != "" {
		return &url
	}
	if f.PlaceholderImage == "" {
		return nil
	}
	placeholder := f.PlaceholderImage
	return &placeholder
}

// studentPrice reads the first price entry. The API lists the student price first.
func studentPrice(prices []MealPrice) *float64 {
	if len(prices) == 0 || prices[0].Price == nil {
		return nil
	}
	price := *prices[0].Price
	return &price
}
