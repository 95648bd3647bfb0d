package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/users")

	// === Public Routes ===
	group.POST("/register", h.Register)
	group.POST("/login", h.Login)

	// === Authenticated Routes ===
	group.GET("/me", authMiddleware, h.Me)

	// === Admin Routes ===
	admin := group.Group("")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("", h.List)
		admin.PUT("/:id/room", h.AssignRoom)
	}
}
