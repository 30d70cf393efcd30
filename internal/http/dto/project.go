package dto

import (
	"time"

	"workstack.io/tracker/internal/model"
	"workstack.io/tracker/internal/store"
)

// ProjectSearchRequest binds the admin listing filters. Dates cover the
// created_at column and are inclusive day bounds.
type ProjectSearchRequest struct {
	OrganizationSlug *string    `form:"organization_slug"`
	Status           *string    `form:"status"`
	Query            *string    `form:"q"`
	CreatedAfter     *time.Time `form:"created_after" time_format:"2006-01-02" time_utc:"1"`
	CreatedBefore    *time.Time `form:"created_before" time_format:"2006-01-02" time_utc:"1"`
}

func (r *ProjectSearchRequest) ToFilter() store.ProjectFilter {
	filter := store.ProjectFilter{
		OrganizationSlug: r.OrganizationSlug,
		Query:            r.Query,
		CreatedAfter:     r.CreatedAfter,
		CreatedBefore:    r.CreatedBefore,
	}
	if r.Status != nil {
		status := model.ProjectStatus(*r.Status)
		filter.Status = &status
	}
	return filter
}

type ProjectResponse struct {
	ID             int64     `json:"id,string"`
	OrganizationID int64     `json:"organization_id,string"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	DueDate        *string   `json:"due_date,omitempty"`
	IsOverdue      bool      `json:"is_overdue"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToProjectResponse(p *model.Project, now time.Time) *ProjectResponse {
	resp := &ProjectResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		Description:    p.Description,
		Status:         string(p.Status),
		IsOverdue:      p.IsOverdue(now),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.DueDate != nil {
		due := p.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}
