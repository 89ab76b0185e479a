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

// Payload is the weekly rota response of the menu API.
// Every array may be missing; a nil slice ranges as empty.
type Payload struct {
	WeeklyRotas []WeeklyRota `json:"weekly-rota-array"`
}

type WeeklyRota struct {
	FacilityID   int         `json:"facility-id"`
	FacilityName string      `json:"facility-name"`
	Days         []DayOfWeek `json:"day-of-week-array"`
}

type DayOfWeek struct {
	Code         int           `json:"day-of-week-code"`
	OpeningHours []OpeningHour `json:"opening-hour-array"`
}

type OpeningHour struct {
	MealTimes []MealTime `json:"meal-time-array"`
}

type MealTime struct {
	Name  string `json:"name"`
	Lines []Line `json:"line-array"`
}

type Line struct {
	Name string `json:"name"`
	Meal *Meal  `json:"meal"`
}

type Meal struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ImageURL    string      `json:"image-url"`
	Prices      []MealPrice `json:"meal-price-array"`
}

type MealPrice struct {
	Price         *float64 `json:"price"`
	CustomerGroup string   `json:"customer-group-desc"`
}

// MealRecord is one matching meal of today, flattened out of the payload
type MealRecord struct {
	FacilityName string   `json:"facilityName"`
	MealName     string   `json:"mealName"`
	Description  string   `json:"description"`
	StudentPrice *float64 `json:"studentPrice"`
	ImageURL     *string  `json:"imageUrl"`
}
