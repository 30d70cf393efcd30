package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"workstack.io/tracker/internal/http/dto"
	"workstack.io/tracker/internal/service"
)

// AdminHandler exposes read-only listings over every tenant for operators.
type AdminHandler struct {
	query service.QueryService
}

func NewAdminHandler(query service.QueryService) *AdminHandler {
	return &AdminHandler{query: query}
}

// ListOrganizations returns every organization with its derived counts.
func (h *AdminHandler) ListOrganizations(c *gin.Context) {
	ctx := c.Request.Context()

	orgs, err := h.query.ListOrganizations(ctx)
	if err != nil {
		respondError(c, "failed to list organizations", err)
		return
	}

	resp := make([]*dto.OrganizationResponse, 0, len(orgs))
	for i := range orgs {
		org := &orgs[i]
		projectCount, err := h.query.ProjectCount(ctx, org.ID)
		if err != nil {
			respondError(c, "failed to count projects", err)
			return
		}
		taskCount, err := h.query.OrgTaskCount(ctx, org.ID)
		if err != nil {
			respondError(c, "failed to count tasks", err)
			return
		}
		resp = append(resp, dto.ToOrganizationResponse(org, projectCount, taskCount))
	}

	c.JSON(http.StatusOK, gin.H{"organizations": resp})
}

// SearchProjects lists projects across tenants, narrowed by the optional
// status, organization, free-text and date-range filters.
func (h *AdminHandler) SearchProjects(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ProjectSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter: " + err.Error()})
		return
	}

	projects, err := h.query.SearchProjects(ctx, req.ToFilter())
	if err != nil {
		respondError(c, "failed to search projects", err)
		return
	}

	now := time.Now()
	resp := make([]*dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		resp = append(resp, dto.ToProjectResponse(&projects[i], now))
	}

	c.JSON(http.StatusOK, gin.H{"projects": resp})
}

// SearchTasks lists tasks across tenants with the same filter surface as
// projects, plus an optional project scope.
func (h *AdminHandler) SearchTasks(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.TaskSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter: " + err.Error()})
		return
	}

	tasks, err := h.query.SearchTasks(ctx, req.ToFilter())
	if err != nil {
		respondError(c, "failed to search tasks", err)
		return
	}

	now := time.Now()
	resp := make([]*dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, dto.ToTaskResponse(&tasks[i], now))
	}

	c.JSON(http.StatusOK, gin.H{"tasks": resp})
}

// ListComments lists comments across tenants, optionally scoped to one task.
func (h *AdminHandler) ListComments(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CommentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter: " + err.Error()})
		return
	}

	comments, err := h.query.ListComments(ctx, req.TaskID)
	if err != nil {
		respondError(c, "failed to list comments", err)
		return
	}

	resp := make([]*dto.CommentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, dto.ToCommentResponse(&comments[i]))
	}

	c.JSON(http.StatusOK, gin.H{"comments": resp})
}

// respondError maps service error codes onto HTTP statuses. Anything without
// a code is an internal failure and gets logged.
func respondError(c *gin.Context, msg string, err error) {
	ctx := c.Request.Context()

	switch service.CodeOf(err) {
	case service.CodeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case service.CodeConflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case service.CodeInvalid:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(ctx, msg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}
