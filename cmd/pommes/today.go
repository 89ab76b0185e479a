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
package main

import (
	"Pommes/internal/env"
	"Pommes/internal/v0/menu"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var (
	todayLang string
	todayJSON bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's meals matching the keyword of the chosen language",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := todayLang
		if raw == "" {
			raw = env.GetEnv(env.EnvMenuLanguage, string(menu.German))
		}
		lang, err := menu.ParseLanguage(raw)
		if err != nil {
			return fmt.Errorf("invalid --lang: %w", err)
		}

		widget := newWidget(lang)
		if todayJSON {
			today, err := widget.Search(cmd.Context(), lang)
			if err != nil {
				return errors.New(menu.ConnectionFailedMessage)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(today)
		}

		state := widget.Fetch(cmd.Context())
		if err := menu.WriteText(cmd.OutOrStdout(), menu.Render(state, widget.Query())); err != nil {
			return err
		}
		if state.Phase() == menu.PhaseError {
			return errors.New(state.Message())
		}
		return nil
	},
}

func newWidget(lang menu.Language) *menu.Widget {
	loc := env.Location()
	client := &menu.Client{
		BaseURL:    env.GetEnv(env.EnvMenuAPIBaseURL, menu.DefaultBaseURL),
		ClientID:   env.GetEnv(env.EnvMenuClientID, menu.DefaultClientID),
		PageSize:   env.GetInt(env.EnvMenuPageSize, menu.DefaultPageSize),
		HTTPClient: &http.Client{Timeout: env.GetDuration(env.EnvMenuHTTPTimeout, 0)},
	}
	filter := menu.Filter{
		Facilities:       menu.DefaultFacilities,
		PlaceholderImage: env.GetEnv(env.EnvMenuPlaceholderImage, ""),
	}
	return menu.NewWidget(client, filter,
		menu.WithLanguage(lang),
		menu.WithClock(func() time.Time { return time.Now().In(loc) }),
	)
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayLang, "lang", "", "Language de or en (default $MENU_LANGUAGE or de)")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Print the matches as JSON")
}

