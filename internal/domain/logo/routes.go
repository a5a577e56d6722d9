package logo

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the read route on public and the writes on protected.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET(h.kind.Route, h.List)

	protected.POST(h.kind.Route, h.Create)
	protected.PUT(h.kind.Route+"/:id", h.Update)
	protected.DELETE(h.kind.Route+"/:id", h.Delete)
}
