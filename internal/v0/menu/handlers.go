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
	"Pommes/internal/v0/common"
	"bytes"
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the widget page, its two controls and the JSON API over one Widget
type Handler struct {
	widget *Widget
}

func NewHandler(widget *Widget) *Handler {
	return &Handler{widget: widget}
}

type widgetResponse struct {
	Query QueryState `json:"query"`
	State UIState    `json:"state"`
	View  View       `json:"view"`
}

func (h *Handler) snapshot() widgetResponse {
	query := h.widget.Query()
	state := h.widget.State()
	return widgetResponse{Query: query, State: state, View: Render(state, query)}
}

// Page renders the widget with whatever state is current
func (h *Handler) Page(c *gin.Context) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, h.widget.View()); err != nil {
		log.Printf("render widget page: %v", err)
		c.String(http.StatusInternalServerError, "template error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) Toggle(c *gin.Context) {
	h.widget.ToggleLanguage()
	c.Redirect(http.StatusSeeOther, "/")
}

// Trigger runs a fetch to completion even when the browser goes away
func (h *Handler) Trigger(c *gin.Context) {
	h.widget.Fetch(context.WithoutCancel(c.Request.Context()))
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) GetWidget(c *gin.Context) {
	c.JSON(http.StatusOK, common.CreateSuccessResponseWithRequestID(h.snapshot(), common.RequestID(c)))
}

func (h *Handler) PostToggle(c *gin.Context) {
	h.widget.ToggleLanguage()
	c.JSON(http.StatusOK, common.CreateSuccessResponseWithRequestID(h.snapshot(), common.RequestID(c)))
}

// PostFetch answers 200 in both outcomes; a failed fetch shows up as the error state
func (h *Handler) PostFetch(c *gin.Context) {
	h.widget.Fetch(context.WithoutCancel(c.Request.Context()))
	c.JSON(http.StatusOK, common.CreateSuccessResponseWithRequestID(h.snapshot(), common.RequestID(c)))
}

// GetToday searches without changing the widget. lang defaults to the widget's language.
func (h *Handler) GetToday(c *gin.Context) {
	lang := h.widget.Query().Language
	if raw := c.Query("lang"); raw != "" {
		parsed, err := ParseLanguage(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, common.CreateErrorResponseWithRequestID([]string{err.Error()}, common.RequestID(c)))
			return
		}
		lang = parsed
	}

	today, err := h.widget.Search(context.WithoutCancel(c.Request.Context()), lang)
	if err != nil {
		log.Printf("menu search (%s) failed: %v", lang, err)
		c.JSON(http.StatusBadGateway, common.CreateErrorResponseWithRequestID([]string{ConnectionFailedMessage}, common.RequestID(c)))
		return
	}
	c.JSON(http.StatusOK, common.CreateSuccessResponseWithRequestID(today, common.RequestID(c)))
}
