//This project is the cafeteria menu widget of the OpenSourceDUTH team. It searches today's university cafeteria menus for a keyword.
//Pommes Copyright (C) 2025 OpenSourceDUTH
//This program is free software: you can redistribute it and/or modify
//it under the terms of the GNU General Public License as published by
//the Free Software Foundation, either version 3 of the License, or
//(at your option) any later version.
//
//This program is distributed in the hope that it will be useful,
//but WITHOUT ANY WARRANTY; without even the implied warranty of
//MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//GNU General Public License for more details.
//
//You should have received a copy of the GNU General Public License
//along with this program.  If not, see <https://www.gnu.org/licenses/>.
package env

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetList splits a comma separated value, dropping empty items
func GetList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// Location resolves MENU_TIMEZONE. Unknown zones fall back to the host zone.
func Location() *time.Location {
	name := GetEnv(EnvMenuTimezone, DefaultTimezone)
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Warning: unknown time zone %q, using local time: %v", name, err)
		return time.Local
	}
	return loc
}

const DefaultTimezone = "Europe/Zurich"

// Server
const (
	EnvPort               = "PORT"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	// EnvReleaseMode switches gin to release mode when true
	EnvReleaseMode        = "RELEASE_MODE"
)

// Menu API and widget
const (
	EnvMenuAPIBaseURL       = "MENU_API_BASE_URL"
	EnvMenuClientID         = "MENU_CLIENT_ID"
	EnvMenuPageSize         = "MENU_PAGE_SIZE"
	EnvMenuHTTPTimeout      = "MENU_HTTP_TIMEOUT"
	EnvMenuTimezone         = "MENU_TIMEZONE"
	EnvMenuLanguage         = "MENU_LANGUAGE"
	EnvMenuPlaceholderImage = "MENU_PLACEHOLDER_IMAGE"
)
