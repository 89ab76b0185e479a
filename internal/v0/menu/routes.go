package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the JSON API under rg
func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	widget := rg.Group("/widget")
	{
		widget.GET("", h.GetWidget)
		widget.POST("/toggle", h.PostToggle)
		widget.POST("/fetch", h.PostFetch)
	}

	menu := rg.Group("/menu")
	{
		menu.GET("/today", h.GetToday)
	}
}

// RegisterPages mounts the HTML widget, its form targets and the placeholder image
func RegisterPages(router *gin.Engine, h *Handler) {
	router.GET("/", h.Page)
	router.POST("/toggle", h.Toggle)
	router.POST("/fetch", h.Trigger)
	router.StaticFileFS(DefaultPlaceholderImage, "assets/pommes.svg", http.FS(assetFS))
	router.StaticFileFS("/favicon.ico", "assets/pommes.svg", http.FS(assetFS))
}
