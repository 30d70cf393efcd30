package service_test

import (
	"context"

	"workstack.io/tracker/internal/model"
	"workstack.io/tracker/internal/service"
	"workstack.io/tracker/internal/store"
)

// mockTxRunner hands the same provider to every transactional function.
// Transaction semantics are exercised against a real database elsewhere;
// these tests cover service behavior.
type mockTxRunner struct {
	provider *mockStoreProvider
}

func (m *mockTxRunner) WithTx(_ context.Context, fn func(stores service.StoreProvider) error) error {
	return fn(m.provider)
}

type mockStoreProvider struct {
	orgs     *mockOrganizationStore
	projects *mockProjectStore
	tasks    *mockTaskStore
	comments *mockCommentStore
}

func newMockProvider() *mockStoreProvider {
	return &mockStoreProvider{
		orgs:     &mockOrganizationStore{},
		projects: &mockProjectStore{},
		tasks:    &mockTaskStore{},
		comments: &mockCommentStore{},
	}
}

func (m *mockStoreProvider) Organizations() store.OrganizationStore { return m.orgs }
func (m *mockStoreProvider) Projects() store.ProjectStore           { return m.projects }
func (m *mockStoreProvider) Tasks() store.TaskStore                 { return m.tasks }
func (m *mockStoreProvider) Comments() store.CommentStore           { return m.comments }

type mockOrganizationStore struct {
	getByIDFn   func(ctx context.Context, id int64) (*model.Organization, error)
	getBySlugFn func(ctx context.Context, slug string) (*model.Organization, error)
	listFn      func(ctx context.Context) ([]model.Organization, error)
	createFn    func(ctx context.Context, org *model.Organization) error
	deleteFn    func(ctx context.Context, id int64) error
}

func (m *mockOrganizationStore) GetByID(ctx context.Context, id int64) (*model.Organization, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockOrganizationStore) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, store.ErrNotFound
}

func (m *mockOrganizationStore) List(ctx context.Context) ([]model.Organization, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockOrganizationStore) Create(ctx context.Context, org *model.Organization) error {
	if m.createFn != nil {
		return m.createFn(ctx, org)
	}
	return nil
}

func (m *mockOrganizationStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockProjectStore struct {
	getByIDFn         func(ctx context.Context, id int64) (*model.Project, error)
	getForUpdateFn    func(ctx context.Context, id int64) (*model.Project, error)
	getByOrgAndNameFn func(ctx context.Context, orgID int64, name string) (*model.Project, error)
	listFn            func(ctx context.Context) ([]model.Project, error)
	listByOrgFn       func(ctx context.Context, orgID int64) ([]model.Project, error)
	searchFn          func(ctx context.Context, filter store.ProjectFilter) ([]model.Project, error)
	countByOrgFn      func(ctx context.Context, orgID int64) (int, error)
	createFn          func(ctx context.Context, project *model.Project) error
	updateFn          func(ctx context.Context, project *model.Project) error
	deleteFn          func(ctx context.Context, id int64) error
}

func (m *mockProjectStore) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockProjectStore) GetForUpdate(ctx context.Context, id int64) (*model.Project, error) {
	if m.getForUpdateFn != nil {
		return m.getForUpdateFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockProjectStore) GetByOrgAndName(ctx context.Context, orgID int64, name string) (*model.Project, error) {
	if m.getByOrgAndNameFn != nil {
		return m.getByOrgAndNameFn(ctx, orgID, name)
	}
	return nil, store.ErrNotFound
}

func (m *mockProjectStore) List(ctx context.Context) ([]model.Project, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockProjectStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.Project, error) {
	if m.listByOrgFn != nil {
		return m.listByOrgFn(ctx, orgID)
	}
	return nil, nil
}

func (m *mockProjectStore) Search(ctx context.Context, filter store.ProjectFilter) ([]model.Project, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockProjectStore) CountByOrganization(ctx context.Context, orgID int64) (int, error) {
	if m.countByOrgFn != nil {
		return m.countByOrgFn(ctx, orgID)
	}
	return 0, nil
}

func (m *mockProjectStore) Create(ctx context.Context, project *model.Project) error {
	if m.createFn != nil {
		return m.createFn(ctx, project)
	}
	return nil
}

func (m *mockProjectStore) Update(ctx context.Context, project *model.Project) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, project)
	}
	return nil
}

func (m *mockProjectStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockTaskStore struct {
	getByIDFn              func(ctx context.Context, id int64) (*model.Task, error)
	getForUpdateFn         func(ctx context.Context, id int64) (*model.Task, error)
	getByProjectAndTitleFn func(ctx context.Context, projectID int64, title string) (*model.Task, error)
	listFn                 func(ctx context.Context) ([]model.Task, error)
	listByProjectFn        func(ctx context.Context, projectID int64) ([]model.Task, error)
	searchFn               func(ctx context.Context, filter store.TaskFilter) ([]model.Task, error)
	countByOrgFn           func(ctx context.Context, orgID int64) (int, error)
	createFn               func(ctx context.Context, task *model.Task) error
	updateFn               func(ctx context.Context, task *model.Task) error
	deleteFn               func(ctx context.Context, id int64) error
}

func (m *mockTaskStore) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockTaskStore) GetForUpdate(ctx context.Context, id int64) (*model.Task, error) {
	if m.getForUpdateFn != nil {
		return m.getForUpdateFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockTaskStore) GetByProjectAndTitle(ctx context.Context, projectID int64, title string) (*model.Task, error) {
	if m.getByProjectAndTitleFn != nil {
		return m.getByProjectAndTitleFn(ctx, projectID, title)
	}
	return nil, store.ErrNotFound
}

func (m *mockTaskStore) List(ctx context.Context) ([]model.Task, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockTaskStore) ListByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	if m.listByProjectFn != nil {
		return m.listByProjectFn(ctx, projectID)
	}
	return nil, nil
}

func (m *mockTaskStore) Search(ctx context.Context, filter store.TaskFilter) ([]model.Task, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockTaskStore) CountByOrganization(ctx context.Context, orgID int64) (int, error) {
	if m.countByOrgFn != nil {
		return m.countByOrgFn(ctx, orgID)
	}
	return 0, nil
}

func (m *mockTaskStore) Create(ctx context.Context, task *model.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) Update(ctx context.Context, task *model.Task) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockCommentStore struct {
	getByIDFn         func(ctx context.Context, id int64) (*model.TaskComment, error)
	getByNaturalKeyFn func(ctx context.Context, taskID int64, authorEmail, content string) (*model.TaskComment, error)
	listFn            func(ctx context.Context) ([]model.TaskComment, error)
	listByTaskFn      func(ctx context.Context, taskID int64) ([]model.TaskComment, error)
	countByTaskFn     func(ctx context.Context, taskID int64) (int, error)
	createFn          func(ctx context.Context, comment *model.TaskComment) error
}

func (m *mockCommentStore) GetByID(ctx context.Context, id int64) (*model.TaskComment, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockCommentStore) GetByNaturalKey(ctx context.Context, taskID int64, authorEmail, content string) (*model.TaskComment, error) {
	if m.getByNaturalKeyFn != nil {
		return m.getByNaturalKeyFn(ctx, taskID, authorEmail, content)
	}
	return nil, store.ErrNotFound
}

func (m *mockCommentStore) List(ctx context.Context) ([]model.TaskComment, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockCommentStore) ListByTask(ctx context.Context, taskID int64) ([]model.TaskComment, error) {
	if m.listByTaskFn != nil {
		return m.listByTaskFn(ctx, taskID)
	}
	return nil, nil
}

func (m *mockCommentStore) CountByTask(ctx context.Context, taskID int64) (int, error) {
	if m.countByTaskFn != nil {
		return m.countByTaskFn(ctx, taskID)
	}
	return 0, nil
}

func (m *mockCommentStore) Create(ctx context.Context, comment *model.TaskComment) error {
	if m.createFn != nil {
		return m.createFn(ctx, comment)
	}
	return nil
}
