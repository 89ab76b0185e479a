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
	"Pommes/internal/common"
	"Pommes/internal/env"
	"Pommes/internal/v0/menu"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	loc := env.Location()
	lang, err := menu.ParseLanguage(env.GetEnv(env.EnvMenuLanguage, string(menu.German)))
	if err != nil {
		log.Printf("Warning: %v, falling back to German", err)
		lang = menu.German
	}

	// Menu API client. No timeout unless configured
	client := &menu.Client{
		BaseURL:    env.GetEnv(env.EnvMenuAPIBaseURL, menu.DefaultBaseURL),
		ClientID:   env.GetEnv(env.EnvMenuClientID, menu.DefaultClientID),
		PageSize:   env.GetInt(env.EnvMenuPageSize, menu.DefaultPageSize),
		HTTPClient: &http.Client{Timeout: env.GetDuration(env.EnvMenuHTTPTimeout, 0)},
	}
	filter := menu.Filter{
		Facilities:       menu.DefaultFacilities,
		PlaceholderImage: env.GetEnv(env.EnvMenuPlaceholderImage, menu.DefaultPlaceholderImage),
	}
	widget := menu.NewWidget(client, filter,
		menu.WithLanguage(lang),
		menu.WithClock(func() time.Time { return time.Now().In(loc) }),
	)
	menuHandler := menu.NewHandler(widget)

	if env.GetBool(env.EnvReleaseMode, false) {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Widget page and its controls
	menu.RegisterPages(router, menuHandler)

	// JSON API, open to pages that embed the widget elsewhere
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = env.GetList(env.EnvCORSAllowedOrigins, []string{"*"})
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Request-ID")

	global := router.Group("/api")
	global.Use(cors.New(corsConfig))
	common.RegisterRoutes(global)

	// v0 API routes
	v0Group := global.Group("/v0")
	{
		menu.RegisterRoutes(v0Group, menuHandler)
	}

	server := &http.Server{
		Addr:    ":" + env.GetEnv(env.EnvPort, "9237"),
		Handler: router,
	}

	// Graceful shutdown handling
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("Pommes widget (%s, %s) listening on %s", lang, loc, server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
