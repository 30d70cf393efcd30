package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"workstack.io/tracker/internal/model"
	"workstack.io/tracker/internal/service"
	"workstack.io/tracker/internal/store"
)

var _ = Describe("CommentService", func() {
	var (
		svc      service.CommentService
		provider *mockStoreProvider
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		provider = newMockProvider()
		svc = service.NewCommentService(&mockTxRunner{provider: provider})

		provider.tasks.getByIDFn = func(_ context.Context, id int64) (*model.Task, error) {
			if id == 77 {
				return &model.Task{ID: 77, ProjectID: 42}, nil
			}
			return nil, store.ErrNotFound
		}
	})

	It("creates a comment on an existing task", func() {
		var captured *model.TaskComment
		provider.comments.createFn = func(_ context.Context, c *model.TaskComment) error {
			captured = c
			return nil
		}

		comment, err := svc.Create(ctx, 77, "Looks good to me", "reviewer@example.com")

		Expect(err).NotTo(HaveOccurred())
		Expect(comment.ID).NotTo(BeZero())
		Expect(comment.TaskID).To(Equal(int64(77)))
		Expect(comment.Content).To(Equal("Looks good to me"))
		Expect(comment.AuthorEmail).To(Equal("reviewer@example.com"))
		Expect(captured).To(Equal(comment))
	})

	It("fails NotFound for an unknown task and persists nothing", func() {
		created := false
		provider.comments.createFn = func(_ context.Context, _ *model.TaskComment) error {
			created = true
			return nil
		}

		_, err := svc.Create(ctx, 999, "Hello", "reviewer@example.com")

		Expect(service.CodeOf(err)).To(Equal(service.CodeNotFound))
		Expect(created).To(BeFalse())
	})

	It("fails Invalid on empty content", func() {
		_, err := svc.Create(ctx, 77, "   ", "reviewer@example.com")
		Expect(service.CodeOf(err)).To(Equal(service.CodeInvalid))
	})

	It("fails Invalid on a missing author email", func() {
		_, err := svc.Create(ctx, 77, "Hello", "")
		Expect(service.CodeOf(err)).To(Equal(service.CodeInvalid))
	})

	It("fails Invalid on a malformed author email", func() {
		_, err := svc.Create(ctx, 77, "Hello", "not-an-email")
		Expect(service.CodeOf(err)).To(Equal(service.CodeInvalid))
	})
})
