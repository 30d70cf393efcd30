package graph

import (
	"context"
	"time"

	"github.com/graphql-go/graphql"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"workstack.io/tracker/common/id"
	"workstack.io/tracker/internal/model"
	"workstack.io/tracker/internal/service"
)

type env struct {
	db     *memDB
	schema graphql.Schema
}

func newEnv() *env {
	db := newMemDB()
	svcs := service.NewServices(service.ServicesConfig{Stores: db, TxRunner: db})
	schema, err := NewSchema(svcs)
	Expect(err).NotTo(HaveOccurred())
	return &env{db: db, schema: schema}
}

func (e *env) exec(query string, vars map[string]interface{}) *graphql.Result {
	return Execute(context.Background(), e.schema, query, "", vars)
}

func errCode(res *graphql.Result) string {
	ExpectWithOffset(1, res.Errors).NotTo(BeEmpty())
	code, _ := res.Errors[0].Extensions["code"].(string)
	return code
}

func field(data interface{}, name string) map[string]interface{} {
	m, ok := data.(map[string]interface{})
	ExpectWithOffset(1, ok).To(BeTrue())
	out, _ := m[name].(map[string]interface{})
	return out
}

func (e *env) seedOrg(name, slug string) *model.Organization {
	now := time.Now().UTC()
	org := &model.Organization{
		ID: id.New(), Name: name, Slug: slug,
		ContactEmail: slug + "@example.com",
		CreatedAt:    now, UpdatedAt: now,
	}
	e.db.orgs[org.ID] = org
	return org
}

func (e *env) seedProject(org *model.Organization, name string, status model.ProjectStatus, due *time.Time) *model.Project {
	now := time.Now().UTC()
	p := &model.Project{
		ID: id.New(), OrganizationID: org.ID, Name: name,
		Status: status, DueDate: due,
		CreatedAt: now, UpdatedAt: now,
	}
	e.db.projects[p.ID] = p
	return p
}

func (e *env) seedTask(p *model.Project, title string, status model.TaskStatus) *model.Task {
	now := time.Now().UTC()
	t := &model.Task{
		ID: id.New(), ProjectID: p.ID, Title: title, Status: status,
		CreatedAt: now, UpdatedAt: now,
	}
	e.db.tasks[t.ID] = t
	return t
}

func (e *env) seedComment(t *model.Task, content, email string) *model.TaskComment {
	now := time.Now().UTC()
	c := &model.TaskComment{
		ID: id.New(), TaskID: t.ID, Content: content, AuthorEmail: email,
		CreatedAt: now, UpdatedAt: now,
	}
	e.db.comments[c.ID] = c
	return c
}

var _ = Describe("query root", func() {
	var (
		e    *env
		acme *model.Organization
		site *model.Project
		task *model.Task
	)

	BeforeEach(func() {
		e = newEnv()
		acme = e.seedOrg("Acme", "acme")
		globex := e.seedOrg("Globex", "globex")
		site = e.seedProject(acme, "Website", model.ProjectStatusActive, nil)
		e.seedProject(globex, "Warehouse", model.ProjectStatusOnHold, nil)
		task = e.seedTask(site, "Design homepage", model.TaskStatusDone)
		e.seedTask(site, "Write copy", model.TaskStatusTodo)
		e.seedComment(task, "Looks good", "reviewer@example.com")
	})

	It("resolves an organization by slug with derived counts", func() {
		res := e.exec(`{ organization(slug: "acme") { name slug projectCount taskCount } }`, nil)
		Expect(res.Errors).To(BeEmpty())

		org := field(res.Data, "organization")
		Expect(org["name"]).To(Equal("Acme"))
		Expect(org["projectCount"]).To(Equal(1))
		Expect(org["taskCount"]).To(Equal(2))
	})

	It("reports NOT_FOUND for an unknown organization slug", func() {
		res := e.exec(`{ organization(slug: "ghost") { name } }`, nil)
		Expect(errCode(res)).To(Equal("NOT_FOUND"))
	})

	It("lists every organization", func() {
		res := e.exec(`{ organizations { slug } }`, nil)
		Expect(res.Errors).To(BeEmpty())
		orgs := res.Data.(map[string]interface{})["organizations"].([]interface{})
		Expect(orgs).To(HaveLen(2))
	})

	It("lists projects across all organizations when unscoped", func() {
		res := e.exec(`{ projects { name } }`, nil)
		Expect(res.Errors).To(BeEmpty())
		projects := res.Data.(map[string]interface{})["projects"].([]interface{})
		Expect(projects).To(HaveLen(2))
	})

	It("scopes projects to one organization by slug", func() {
		res := e.exec(`{ projects(organizationSlug: "acme") { name } }`, nil)
		Expect(res.Errors).To(BeEmpty())
		projects := res.Data.(map[string]interface{})["projects"].([]interface{})
		Expect(projects).To(HaveLen(1))
		Expect(projects[0].(map[string]interface{})["name"]).To(Equal("Website"))
	})

	It("returns an empty list for an unknown organization slug", func() {
		res := e.exec(`{ projects(organizationSlug: "ghost") { name } }`, nil)
		Expect(res.Errors).To(BeEmpty())
		projects := res.Data.(map[string]interface{})["projects"].([]interface{})
		Expect(projects).To(BeEmpty())
	})

	It("resolves a project with its organization and task stats", func() {
		res := e.exec(`query($id: ID!) {
			project(id: $id) {
				name
				isOverdue
				organization { slug }
				taskStats { total completed inProgress todo completionRate }
			}
		}`, map[string]interface{}{"id": formatID(site.ID)})
		Expect(res.Errors).To(BeEmpty())

		project := field(res.Data, "project")
		Expect(project["name"]).To(Equal("Website"))
		Expect(project["isOverdue"]).To(Equal(false))
		Expect(project["organization"].(map[string]interface{})["slug"]).To(Equal("acme"))

		stats := project["taskStats"].(map[string]interface{})
		Expect(stats["total"]).To(Equal(2))
		Expect(stats["completed"]).To(Equal(1))
		Expect(stats["todo"]).To(Equal(1))
		Expect(stats["completionRate"]).To(BeNumerically("~", 50.0, 0.01))
	})

	It("resolves a task with its ancestors and comments", func() {
		res := e.exec(`query($id: ID!) {
			task(id: $id) {
				title
				commentCount
				project { name }
				organization { slug }
				comments { content authorEmail }
			}
		}`, map[string]interface{}{"id": formatID(task.ID)})
		Expect(res.Errors).To(BeEmpty())

		t := field(res.Data, "task")
		Expect(t["title"]).To(Equal("Design homepage"))
		Expect(t["commentCount"]).To(Equal(1))
		Expect(t["project"].(map[string]interface{})["name"]).To(Equal("Website"))
		Expect(t["organization"].(map[string]interface{})["slug"]).To(Equal("acme"))

		comments := t["comments"].([]interface{})
		Expect(comments).To(HaveLen(1))
		Expect(comments[0].(map[string]interface{})["content"]).To(Equal("Looks good"))
	})

	It("reports NOT_FOUND for an unknown task id", func() {
		res := e.exec(`{ task(id: "12345") { title } }`, nil)
		Expect(errCode(res)).To(Equal("NOT_FOUND"))
	})

	It("reports INVALID for a malformed id", func() {
		res := e.exec(`{ project(id: "not-a-number") { name } }`, nil)
		Expect(errCode(res)).To(Equal("INVALID"))
	})
})

var _ = Describe("mutation root", func() {
	var (
		e    *env
		acme *model.Organization
	)

	BeforeEach(func() {
		e = newEnv()
		acme = e.seedOrg("Acme", "acme")
	})

	Describe("createProject", func() {
		It("creates a project with defaults applied", func() {
			res := e.exec(`mutation {
				createProject(organizationSlug: "acme", input: { name: "Website" }) {
					name description status dueDate
				}
			}`, nil)
			Expect(res.Errors).To(BeEmpty())

			project := field(res.Data, "createProject")
			Expect(project["name"]).To(Equal("Website"))
			Expect(project["description"]).To(Equal(""))
			Expect(project["status"]).To(Equal("ACTIVE"))
			Expect(project["dueDate"]).To(BeNil())
		})

		It("accepts a due date and status", func() {
			res := e.exec(`mutation {
				createProject(organizationSlug: "acme", input: {
					name: "Launch", status: ON_HOLD, dueDate: "2026-12-01"
				}) { status dueDate }
			}`, nil)
			Expect(res.Errors).To(BeEmpty())

			project := field(res.Data, "createProject")
			Expect(project["status"]).To(Equal("ON_HOLD"))
			Expect(project["dueDate"]).To(Equal("2026-12-01"))
		})

		It("reports CONFLICT for a duplicate name in the same organization", func() {
			e.seedProject(acme, "Website", model.ProjectStatusActive, nil)
			res := e.exec(`mutation {
				createProject(organizationSlug: "acme", input: { name: "Website" }) { id }
			}`, nil)
			Expect(errCode(res)).To(Equal("CONFLICT"))
		})

		It("allows the same name in a different organization", func() {
			e.seedProject(acme, "Website", model.ProjectStatusActive, nil)
			e.seedOrg("Globex", "globex")
			res := e.exec(`mutation {
				createProject(organizationSlug: "globex", input: { name: "Website" }) { id }
			}`, nil)
			Expect(res.Errors).To(BeEmpty())
		})

		It("reports NOT_FOUND for an unknown organization", func() {
			res := e.exec(`mutation {
				createProject(organizationSlug: "ghost", input: { name: "Website" }) { id }
			}`, nil)
			Expect(errCode(res)).To(Equal("NOT_FOUND"))
		})

		It("reports INVALID for a blank name", func() {
			res := e.exec(`mutation {
				createProject(organizationSlug: "acme", input: { name: "" }) { id }
			}`, nil)
			Expect(errCode(res)).To(Equal("INVALID"))
		})
	})

	Describe("updateProject", func() {
		It("changes only the supplied fields", func() {
			due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
			p := e.seedProject(acme, "Website", model.ProjectStatusActive, &due)

			res := e.exec(`mutation($id: ID!) {
				updateProject(id: $id, input: { status: COMPLETED }) {
					name status dueDate
				}
			}`, map[string]interface{}{"id": formatID(p.ID)})
			Expect(res.Errors).To(BeEmpty())

			project := field(res.Data, "updateProject")
			Expect(project["status"]).To(Equal("COMPLETED"))
			Expect(project["name"]).To(Equal("Website"))
			Expect(project["dueDate"]).To(Equal("2026-12-01"))
		})

		It("suppresses isOverdue once the project is completed", func() {
			past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
			p := e.seedProject(acme, "Website", model.ProjectStatusActive, &past)

			res := e.exec(`mutation($id: ID!) {
				updateProject(id: $id, input: { status: COMPLETED }) { isOverdue }
			}`, map[string]interface{}{"id": formatID(p.ID)})
			Expect(res.Errors).To(BeEmpty())
			Expect(field(res.Data, "updateProject")["isOverdue"]).To(Equal(false))
		})

		It("clears the due date and description when the input variable nulls them", func() {
			due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
			p := e.seedProject(acme, "Website", model.ProjectStatusActive, &due)
			p.Description = "launch checklist"

			res := e.exec(`mutation($id: ID!, $input: UpdateProjectInput!) {
				updateProject(id: $id, input: $input) { name description dueDate }
			}`, map[string]interface{}{
				"id":    formatID(p.ID),
				"input": map[string]interface{}{"description": nil, "dueDate": nil},
			})
			Expect(res.Errors).To(BeEmpty())

			project := field(res.Data, "updateProject")
			Expect(project["name"]).To(Equal("Website"))
			Expect(project["description"]).To(Equal(""))
			Expect(project["dueDate"]).To(BeNil())

			Expect(e.db.projects[p.ID].DueDate).To(BeNil())
			Expect(e.db.projects[p.ID].Description).To(Equal(""))
		})

		It("reports NOT_FOUND for an unknown project", func() {
			res := e.exec(`mutation {
				updateProject(id: "9999", input: { name: "X" }) { id }
			}`, nil)
			Expect(errCode(res)).To(Equal("NOT_FOUND"))
		})
	})

	Describe("deleteProject", func() {
		It("cascades to tasks and comments", func() {
			p := e.seedProject(acme, "Website", model.ProjectStatusActive, nil)
			t := e.seedTask(p, "Design", model.TaskStatusTodo)
			e.seedComment(t, "note", "a@example.com")

			res := e.exec(`mutation($id: ID!) { deleteProject(id: $id) }`,
				map[string]interface{}{"id": formatID(p.ID)})
			Expect(res.Errors).To(BeEmpty())
			Expect(res.Data.(map[string]interface{})["deleteProject"]).To(Equal(true))

			Expect(e.db.projects).To(BeEmpty())
			Expect(e.db.tasks).To(BeEmpty())
			Expect(e.db.comments).To(BeEmpty())
		})

		It("reports NOT_FOUND for an unknown project", func() {
			res := e.exec(`mutation { deleteProject(id: "9999") }`, nil)
			Expect(errCode(res)).To(Equal("NOT_FOUND"))
		})
	})

	Describe("createTask", func() {
		var p *model.Project

		BeforeEach(func() {
			p = e.seedProject(acme, "Website", model.ProjectStatusActive, nil)
		})

		It("creates a task with defaults applied", func() {
			res := e.exec(`mutation($pid: ID!) {
				createTask(input: { projectId: $pid, title: "Design" }) {
					title status assigneeEmail
				}
			}`, map[string]interface{}{"pid": formatID(p.ID)})
			Expect(res.Errors).To(BeEmpty())

			task := field(res.Data, "createTask")
			Expect(task["title"]).To(Equal("Design"))
			Expect(task["status"]).To(Equal("TODO"))
			Expect(task["assigneeEmail"]).To(Equal(""))
		})

		It("reports INVALID for a malformed assignee email", func() {
			res := e.exec(`mutation($pid: ID!) {
				createTask(input: { projectId: $pid, title: "Design", assigneeEmail: "nope" }) { id }
			}`, map[string]interface{}{"pid": formatID(p.ID)})
			Expect(errCode(res)).To(Equal("INVALID"))
		})

		It("reports NOT_FOUND for an unknown project", func() {
			res := e.exec(`mutation {
				createTask(input: { projectId: "9999", title: "Design" }) { id }
			}`, nil)
			Expect(errCode(res)).To(Equal("NOT_FOUND"))
		})
	})

	Describe("updateTask", func() {
		var t *model.Task

		BeforeEach(func() {
			p := e.seedProject(acme, "Website", model.ProjectStatusActive, nil)
			t = e.seedTask(p, "Design", model.TaskStatusTodo)
			due := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
			t.DueDate = &due
			t.AssigneeEmail = "dev@example.com"
		})

		It("changes only the supplied fields", func() {
			res := e.exec(`mutation($id: ID!) {
				updateTask(id: $id, input: { status: IN_PROGRESS }) {
					title status assigneeEmail
				}
			}`, map[string]interface{}{"id": formatID(t.ID)})
			Expect(res.Errors).To(BeEmpty())

			task := field(res.Data, "updateTask")
			Expect(task["status"]).To(Equal("IN_PROGRESS"))
			Expect(task["title"]).To(Equal("Design"))
			Expect(task["assigneeEmail"]).To(Equal("dev@example.com"))
		})

		It("clears the assignee and due date when the input variable nulls them", func() {
			res := e.exec(`mutation($id: ID!, $input: UpdateTaskInput!) {
				updateTask(id: $id, input: $input) { title assigneeEmail dueDate }
			}`, map[string]interface{}{
				"id":    formatID(t.ID),
				"input": map[string]interface{}{"assigneeEmail": nil, "dueDate": nil},
			})
			Expect(res.Errors).To(BeEmpty())

			task := field(res.Data, "updateTask")
			Expect(task["title"]).To(Equal("Design"))
			Expect(task["assigneeEmail"]).To(Equal(""))
			Expect(task["dueDate"]).To(BeNil())

			Expect(e.db.tasks[t.ID].AssigneeEmail).To(Equal(""))
			Expect(e.db.tasks[t.ID].DueDate).To(BeNil())
		})

		It("clears a single field sent as a nulled variable inside an inline input", func() {
			res := e.exec(`mutation($id: ID!, $due: DateTime) {
				updateTask(id: $id, input: { dueDate: $due }) { dueDate assigneeEmail }
			}`, map[string]interface{}{
				"id":  formatID(t.ID),
				"due": nil,
			})
			Expect(res.Errors).To(BeEmpty())

			task := field(res.Data, "updateTask")
			Expect(task["dueDate"]).To(BeNil())
			Expect(task["assigneeEmail"]).To(Equal("dev@example.com"))
			Expect(e.db.tasks[t.ID].DueDate).To(BeNil())
		})

		It("leaves absent fields alone when other variables are nulled", func() {
			res := e.exec(`mutation($id: ID!, $input: UpdateTaskInput!) {
				updateTask(id: $id, input: $input) { description assigneeEmail }
			}`, map[string]interface{}{
				"id":    formatID(t.ID),
				"input": map[string]interface{}{"description": nil},
			})
			Expect(res.Errors).To(BeEmpty())

			task := field(res.Data, "updateTask")
			Expect(task["description"]).To(Equal(""))
			Expect(task["assigneeEmail"]).To(Equal("dev@example.com"))
		})
	})

	Describe("deleteTask", func() {
		It("cascades to comments", func() {
			p := e.seedProject(acme, "Website", model.ProjectStatusActive, nil)
			t := e.seedTask(p, "Design", model.TaskStatusTodo)
			e.seedComment(t, "note", "a@example.com")

			res := e.exec(`mutation($id: ID!) { deleteTask(id: $id) }`,
				map[string]interface{}{"id": formatID(t.ID)})
			Expect(res.Errors).To(BeEmpty())
			Expect(e.db.tasks).To(BeEmpty())
			Expect(e.db.comments).To(BeEmpty())
		})
	})

	Describe("createComment", func() {
		var t *model.Task

		BeforeEach(func() {
			p := e.seedProject(acme, "Website", model.ProjectStatusActive, nil)
			t = e.seedTask(p, "Design", model.TaskStatusTodo)
		})

		It("creates a comment on a task", func() {
			res := e.exec(`mutation($tid: ID!) {
				createComment(input: { taskId: $tid, content: "LGTM", authorEmail: "r@example.com" }) {
					content authorEmail task { title }
				}
			}`, map[string]interface{}{"tid": formatID(t.ID)})
			Expect(res.Errors).To(BeEmpty())

			comment := field(res.Data, "createComment")
			Expect(comment["content"]).To(Equal("LGTM"))
			Expect(comment["task"].(map[string]interface{})["title"]).To(Equal("Design"))
		})

		It("reports INVALID for empty content", func() {
			res := e.exec(`mutation($tid: ID!) {
				createComment(input: { taskId: $tid, content: "", authorEmail: "r@example.com" }) { id }
			}`, map[string]interface{}{"tid": formatID(t.ID)})
			Expect(errCode(res)).To(Equal("INVALID"))
		})

		It("reports NOT_FOUND for an unknown task", func() {
			res := e.exec(`mutation {
				createComment(input: { taskId: "9999", content: "hi", authorEmail: "r@example.com" }) { id }
			}`, nil)
			Expect(errCode(res)).To(Equal("NOT_FOUND"))
		})
	})
})
