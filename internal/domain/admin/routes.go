package admin

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	admins := protected.Group("/admins")
	{
		admins.GET("", h.List)
		admins.PUT("/email/:id", h.UpdateEmail)
		admins.PUT("/password/:id", h.UpdatePassword)
	}
}
