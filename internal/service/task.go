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

type CreateTaskParams struct {
	ProjectID     int64
	Title         string
	Description   *string
	Status        *model.TaskStatus
	AssigneeEmail *string
	DueDate       *time.Time
}

// UpdateTaskParams applies only the fields the caller supplied. An unset
// field leaves the current value untouched; DueDate set to nil clears it.
type UpdateTaskParams struct {
	Title         Opt[string]
	Description   Opt[string]
	Status        Opt[model.TaskStatus]
	AssigneeEmail Opt[string]
	DueDate       Opt[*time.Time]
}

type TaskService interface {
	Create(ctx context.Context, params CreateTaskParams) (*model.Task, error)
	Update(ctx context.Context, taskID int64, params UpdateTaskParams) (*model.Task, error)
	Delete(ctx context.Context, taskID int64) error
}

type taskService struct {
	tx TxRunner
}

func NewTaskService(tx TxRunner) TaskService {
	return &taskService{tx: tx}
}

func (s *taskService) Create(ctx context.Context, params CreateTaskParams) (*model.Task, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, Invalid("task title is required")
	}

	task := &model.Task{
		ID:        id.New(),
		ProjectID: params.ProjectID,
		Title:     params.Title,
		Status:    model.TaskStatusTodo,
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Status != nil {
		if !params.Status.Valid() {
			return nil, Invalid("unknown task status %q", *params.Status)
		}
		task.Status = *params.Status
	}
	if params.AssigneeEmail != nil && *params.AssigneeEmail != "" {
		if err := ValidateEmail(*params.AssigneeEmail); err != nil {
			return nil, err
		}
		task.AssigneeEmail = *params.AssigneeEmail
	}
	if params.DueDate != nil {
		d := *params.DueDate
		task.DueDate = &d
	}

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Projects().GetByID(ctx, params.ProjectID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return NotFound("project %d not found", params.ProjectID)
			}
			return fmt.Errorf("resolving project: %w", err)
		}
		if err := stores.Tasks().Create(ctx, task); err != nil {
			// The project row can vanish between the lookup and the insert;
			// the FK violation comes back as ErrNotFound.
			if errors.Is(err, store.ErrNotFound) {
				return NotFound("project %d not found", params.ProjectID)
			}
			return fmt.Errorf("creating task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "task created",
		"task_id", task.ID,
		"project_id", task.ProjectID,
	)
	return task, nil
}

func (s *taskService) Update(ctx context.Context, taskID int64, params UpdateTaskParams) (*model.Task, error) {
	if params.Title.Set && strings.TrimSpace(params.Title.Value) == "" {
		return nil, Invalid("task title cannot be empty")
	}
	if params.Status.Set && !params.Status.Value.Valid() {
		return nil, Invalid("unknown task status %q", params.Status.Value)
	}
	if params.AssigneeEmail.Set && params.AssigneeEmail.Value != "" {
		if err := ValidateEmail(params.AssigneeEmail.Value); err != nil {
			return nil, err
		}
	}

	var updated *model.Task

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		task, err := stores.Tasks().GetForUpdate(ctx, taskID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return NotFound("task %d not found", taskID)
			}
			return fmt.Errorf("loading task: %w", err)
		}

		if params.Title.Set {
			task.Title = params.Title.Value
		}
		if params.Description.Set {
			task.Description = params.Description.Value
		}
		if params.Status.Set {
			task.Status = params.Status.Value
		}
		if params.AssigneeEmail.Set {
			task.AssigneeEmail = params.AssigneeEmail.Value
		}
		if params.DueDate.Set {
			task.DueDate = params.DueDate.Value
		}

		if err := stores.Tasks().Update(ctx, task); err != nil {
			return fmt.Errorf("updating task: %w", err)
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "task updated", "task_id", updated.ID)
	return updated, nil
}

func (s *taskService) Delete(ctx context.Context, taskID int64) error {
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Tasks().GetByID(ctx, taskID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return NotFound("task %d not found", taskID)
			}
			return fmt.Errorf("loading task: %w", err)
		}
		if err := stores.Tasks().Delete(ctx, taskID); err != nil {
			return fmt.Errorf("deleting task: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "task deleted", "task_id", taskID)
	return nil
}
