package store

import (
	"context"
	"errors"
	"time"

	"workstack.io/tracker/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// ProjectFilter narrows admin project listings. Nil fields are ignored.
type ProjectFilter struct {
	OrganizationSlug *string
	Status           *model.ProjectStatus
	CreatedAfter     *time.Time
	CreatedBefore    *time.Time
	Query            *string // case-insensitive match on name or description
}

// TaskFilter narrows admin task listings. Nil fields are ignored.
type TaskFilter struct {
	OrganizationSlug *string
	ProjectID        *int64
	Status           *model.TaskStatus
	CreatedAfter     *time.Time
	CreatedBefore    *time.Time
	Query            *string // case-insensitive match on title or description
}

type OrganizationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)
	List(ctx context.Context) ([]model.Organization, error)
	Create(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id int64) error // cascades to projects, tasks, comments
}

type ProjectStore interface {
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	// GetForUpdate locks the row for the remainder of the transaction so a
	// partial update cannot lose a concurrent sibling field write.
	GetForUpdate(ctx context.Context, id int64) (*model.Project, error)
	GetByOrgAndName(ctx context.Context, orgID int64, name string) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	ListByOrganization(ctx context.Context, orgID int64) ([]model.Project, error)
	Search(ctx context.Context, filter ProjectFilter) ([]model.Project, error)
	CountByOrganization(ctx context.Context, orgID int64) (int, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id int64) error // cascades to tasks, comments
}

type TaskStore interface {
	GetByID(ctx context.Context, id int64) (*model.Task, error)
	GetForUpdate(ctx context.Context, id int64) (*model.Task, error)
	GetByProjectAndTitle(ctx context.Context, projectID int64, title string) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.Task, error)
	Search(ctx context.Context, filter TaskFilter) ([]model.Task, error)
	CountByOrganization(ctx context.Context, orgID int64) (int, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, id int64) error // cascades to comments
}

type CommentStore interface {
	GetByID(ctx context.Context, id int64) (*model.TaskComment, error)
	GetByNaturalKey(ctx context.Context, taskID int64, authorEmail, content string) (*model.TaskComment, error)
	List(ctx context.Context) ([]model.TaskComment, error)
	ListByTask(ctx context.Context, taskID int64) ([]model.TaskComment, error)
	CountByTask(ctx context.Context, taskID int64) (int, error)
	Create(ctx context.Context, comment *model.TaskComment) error
}
