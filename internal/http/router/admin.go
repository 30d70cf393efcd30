package router

import (
	"github.com/gin-gonic/gin"

	"workstack.io/tracker/internal/http/handler"
)

// AdminRouter wires the cross-tenant operator listings. These are read-only;
// all writes go through the GraphQL endpoint.
func AdminRouter(rg *gin.RouterGroup, h *handler.AdminHandler) {
	rg.GET("/organizations", h.ListOrganizations)
	rg.GET("/projects", h.SearchProjects)
	rg.GET("/tasks", h.SearchTasks)
	rg.GET("/comments", h.ListComments)
}
