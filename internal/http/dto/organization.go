package dto

import (
	"time"

	"workstack.io/tracker/internal/model"
)

type OrganizationResponse struct {
	ID           int64     `json:"id,string"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ContactEmail string    `json:"contact_email"`
	ProjectCount int       `json:"project_count"`
	TaskCount    int       `json:"task_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToOrganizationResponse(org *model.Organization, projectCount, taskCount int) *OrganizationResponse {
	return &OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		ContactEmail: org.ContactEmail,
		ProjectCount: projectCount,
		TaskCount:    taskCount,
		CreatedAt:    org.CreatedAt,
		UpdatedAt:    org.UpdatedAt,
	}
}
