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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultBaseURL  = "https://idapps.ethz.ch/cookpit-pub-services/v1/weeklyrotas"
	DefaultClientID = "ethz-wcms"
	DefaultPageSize = 50

	userAgent = "pommes/1.0 (+https://github.com/OpenSourceDUTH)"
)

// ConnectionFailedMessage is what the user sees for any failed fetch
const ConnectionFailedMessage = "Verbindung fehlgeschlagen"

// ConnectionError is returned by Fetch for every kind of failure: transport, status or body.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("menu api: %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Fetcher loads the weekly rotas for a date range
type Fetcher interface {
	Fetch(ctx context.Context, week DateRange, lang Language) (*Payload, error)
}

// Client talks to the weekly rota endpoint. The zero value uses the public defaults.
type Client struct {
	BaseURL    string
	ClientID   string
	PageSize   int
	HTTPClient *http.Client
}

// URL builds the request URL for a date range and language
func (c *Client) URL(week DateRange, lang Language) (string, error) {
	base := strings.TrimSpace(c.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse menu api url: %w", err)
	}
	clientID := c.ClientID
	if clientID == "" {
		clientID = DefaultClientID
	}
	size := c.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	q := u.Query()
	q.Set("client-id", clientID)
	q.Set("lang", string(lang))
	q.Set("rs-first", "0")
	q.Set("rs-size", strconv.Itoa(size))
	q.Set("valid-after", week.After())
	q.Set("valid-before", week.Before())
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch issues one GET and decodes the body. There is no retry.
func (c *Client) Fetch(ctx context.Context, week DateRange, lang Language) (*Payload, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	u, err := c.URL(week, lang)
	if err != nil {
		return nil, &ConnectionError{Op: "build request", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &ConnectionError{Op: "build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &ConnectionError{Op: "execute request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{Op: "read response", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ConnectionError{Op: "read response", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &ConnectionError{Op: "decode response", Err: err}
	}
	return &payload, nil
}
