package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"workstack.io/tracker/common/id"
	"workstack.io/tracker/internal/model"
	"workstack.io/tracker/internal/store"
)

type CreateProjectParams struct {
	OrganizationSlug string
	Name             string
	Description      *string
	Status           *model.ProjectStatus
	DueDate          *time.Time
}

// UpdateProjectParams applies only the fields the caller supplied. An unset
// field leaves the current value untouched; DueDate set to nil clears it.
type UpdateProjectParams struct {
	Name        Opt[string]
	Description Opt[string]
	Status      Opt[model.ProjectStatus]
	DueDate     Opt[*time.Time]
}

type ProjectService interface {
	Create(ctx context.Context, params CreateProjectParams) (*model.Project, error)
	Update(ctx context.Context, projectID int64, params UpdateProjectParams) (*model.Project, error)
	Delete(ctx context.Context, projectID int64) error
}

type projectService struct {
	tx TxRunner
}

func NewProjectService(tx TxRunner) ProjectService {
	return &projectService{tx: tx}
}

func (s *projectService) Create(ctx context.Context, params CreateProjectParams) (*model.Project, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, Invalid("project name is required")
	}

	project := &model.Project{
		ID:     id.New(),
		Name:   params.Name,
		Status: model.ProjectStatusActive,
	}
	if params.Description != nil {
		project.Description = *params.Description
	}
	if params.Status != nil {
		if !params.Status.Valid() {
			return nil, Invalid("unknown project status %q", *params.Status)
		}
		project.Status = *params.Status
	}
	if params.DueDate != nil {
		d := *params.DueDate
		project.DueDate = &d
	}

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		org, err := stores.Organizations().GetBySlug(ctx, params.OrganizationSlug)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return NotFound("organization %q not found", params.OrganizationSlug)
			}
			return fmt.Errorf("resolving organization: %w", err)
		}

		project.OrganizationID = org.ID
		if err := stores.Projects().Create(ctx, project); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return Conflict("project %q already exists in organization %q", params.Name, params.OrganizationSlug)
			}
			return fmt.Errorf("creating project: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "project created",
		"project_id", project.ID,
		"org_id", project.OrganizationID,
	)
	return project, nil
}

func (s *projectService) Update(ctx context.Context, projectID int64, params UpdateProjectParams) (*model.Project, error) {
	if params.Name.Set && strings.TrimSpace(params.Name.Value) == "" {
		return nil, Invalid("project name cannot be empty")
	}
	if params.Status.Set && !params.Status.Value.Valid() {
		return nil, Invalid("unknown project status %q", params.Status.Value)
	}

	var updated *model.Project

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		project, err := stores.Projects().GetForUpdate(ctx, projectID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return NotFound("project %d not found", projectID)
			}
			return fmt.Errorf("loading project: %w", err)
		}

		if params.Name.Set {
			project.Name = params.Name.Value
		}
		if params.Description.Set {
			project.Description = params.Description.Value
		}
		if params.Status.Set {
			project.Status = params.Status.Value
		}
		if params.DueDate.Set {
			project.DueDate = params.DueDate.Value
		}

		if err := stores.Projects().Update(ctx, project); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return Conflict("project %q already exists in this organization", project.Name)
			}
			return fmt.Errorf("updating project: %w", err)
		}

		updated = project
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "project updated", "project_id", updated.ID)
	return updated, nil
}

func (s *projectService) Delete(ctx context.Context, projectID int64) error {
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Projects().GetByID(ctx, projectID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return NotFound("project %d not found", projectID)
			}
			return fmt.Errorf("loading project: %w", err)
		}
		if err := stores.Projects().Delete(ctx, projectID); err != nil {
			return fmt.Errorf("deleting project: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "project deleted", "project_id", projectID)
	return nil
}
