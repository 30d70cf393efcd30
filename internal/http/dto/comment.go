package dto

import (
	"time"

	"workstack.io/tracker/internal/model"
)

type CommentListRequest struct {
	TaskID *int64 `form:"task_id"`
}

type CommentResponse struct {
	ID          int64     `json:"id,string"`
	TaskID      int64     `json:"task_id,string"`
	Content     string    `json:"content"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToCommentResponse(c *model.TaskComment) *CommentResponse {
	return &CommentResponse{
		ID:          c.ID,
		TaskID:      c.TaskID,
		Content:     c.Content,
		AuthorEmail: c.AuthorEmail,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
