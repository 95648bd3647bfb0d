package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware, slotCache gin.HandlerFunc) {
	group := g.Group("/reservations")
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("/mine", h.ListMine)
		group.DELETE("/:id", h.Cancel)
	}

	// Slot availability hangs off the resource collection.
	resources := g.Group("/resources")
	resources.Use(authMiddleware)
	{
		resources.GET("/:id/slots", slotCache, h.Slots)
	}

	admin := g.Group("/admin/reservations")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("", h.AdminList)
		admin.DELETE("/:id", h.AdminCancel)
	}
}
