package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"workstack.io/tracker/common/id"
	"workstack.io/tracker/internal/model"
	"workstack.io/tracker/internal/store"
)

// CommentService only creates. Comments are append-only; they are removed
// solely by cascading deletion of an ancestor.
type CommentService interface {
	Create(ctx context.Context, taskID int64, content, authorEmail string) (*model.TaskComment, error)
}

type commentService struct {
	tx TxRunner
}

func NewCommentService(tx TxRunner) CommentService {
	return &commentService{tx: tx}
}

func (s *commentService) Create(ctx context.Context, taskID int64, content, authorEmail string) (*model.TaskComment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, Invalid("comment content is required")
	}
	if strings.TrimSpace(authorEmail) == "" {
		return nil, Invalid("comment author email is required")
	}
	if err := ValidateEmail(authorEmail); err != nil {
		return nil, err
	}

	comment := &model.TaskComment{
		ID:          id.New(),
		TaskID:      taskID,
		Content:     content,
		AuthorEmail: authorEmail,
	}

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := stores.Tasks().GetByID(ctx, taskID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return NotFound("task %d not found", taskID)
			}
			return fmt.Errorf("resolving task: %w", err)
		}
		if err := stores.Comments().Create(ctx, comment); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return NotFound("task %d not found", taskID)
			}
			return fmt.Errorf("creating comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "comment created",
		"comment_id", comment.ID,
		"task_id", comment.TaskID,
	)
	return comment, nil
}
