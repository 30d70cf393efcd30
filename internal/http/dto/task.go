package dto

import (
	"time"

	"workstack.io/tracker/internal/model"
	"workstack.io/tracker/internal/store"
)

type TaskSearchRequest struct {
	OrganizationSlug *string    `form:"organization_slug"`
	ProjectID        *int64     `form:"project_id"`
	Status           *string    `form:"status"`
	Query            *string    `form:"q"`
	CreatedAfter     *time.Time `form:"created_after" time_format:"2006-01-02" time_utc:"1"`
	CreatedBefore    *time.Time `form:"created_before" time_format:"2006-01-02" time_utc:"1"`
}

func (r *TaskSearchRequest) ToFilter() store.TaskFilter {
	filter := store.TaskFilter{
		OrganizationSlug: r.OrganizationSlug,
		ProjectID:        r.ProjectID,
		Query:            r.Query,
		CreatedAfter:     r.CreatedAfter,
		CreatedBefore:    r.CreatedBefore,
	}
	if r.Status != nil {
		status := model.TaskStatus(*r.Status)
		filter.Status = &status
	}
	return filter
}

type TaskResponse struct {
	ID            int64      `json:"id,string"`
	ProjectID     int64      `json:"project_id,string"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	AssigneeEmail string     `json:"assignee_email"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	IsOverdue     bool       `json:"is_overdue"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ToTaskResponse(t *model.Task, now time.Time) *TaskResponse {
	return &TaskResponse{
		ID:            t.ID,
		ProjectID:     t.ProjectID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        string(t.Status),
		AssigneeEmail: t.AssigneeEmail,
		DueDate:       t.DueDate,
		IsOverdue:     t.IsOverdue(now),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
