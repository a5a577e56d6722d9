package testimonial

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET(h.kind.Route, h.List)

	protected.POST(h.kind.Route, h.Create)
	protected.PUT(h.kind.Route+"/:id", h.Update)
	protected.DELETE(h.kind.Route+"/:id", h.Delete)
}
