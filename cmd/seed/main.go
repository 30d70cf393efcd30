// Command seed loads demo data. It is idempotent: every record is looked up
// by its natural key first, so re-running against a populated database only
// fills the gaps.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"workstack.io/tracker/common"
	"workstack.io/tracker/common/id"
	"workstack.io/tracker/common/logger"
	"workstack.io/tracker/core/config"
	"workstack.io/tracker/core/db"
	"workstack.io/tracker/internal/model"
	"workstack.io/tracker/internal/service"
	"workstack.io/tracker/internal/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg)

	if err := id.Init(id.SeederNode); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to apply schema", "error", err)
		os.Exit(1)
	}

	stores := store.NewStores(database.Conn())
	if err := seed(ctx, stores); err != nil {
		slog.ErrorContext(ctx, "seeding failed", "error", err)
		os.Exit(1)
	}

	slog.InfoContext(ctx, "sample data ready")
}

type orgSpec struct {
	Name         string
	Slug         string // derived from Name when empty
	ContactEmail string
	Projects     []projectSpec
}

type projectSpec struct {
	Name        string
	Description string
	Status      model.ProjectStatus
	DueInDays   int
	Tasks       []taskSpec
}

type taskSpec struct {
	Title         string
	Description   string
	Status        model.TaskStatus
	AssigneeEmail string
	DueInDays     int // negative for already-overdue tasks
	Comments      []commentSpec
}

type commentSpec struct {
	AuthorEmail string
	Content     string
}

func sampleData() []orgSpec {
	return []orgSpec{
		{
			Name:         "Demo Organization",
			Slug:         "demo-org",
			ContactEmail: "admin@demo-org.com",
			Projects: []projectSpec{
				{
					Name:        "Website Redesign",
					Description: "Complete redesign of the company website with modern UI/UX",
					Status:      model.ProjectStatusActive,
					DueInDays:   30,
					Tasks: []taskSpec{
						{
							Title:         "Design Homepage",
							Description:   "Create wireframes and mockups for the homepage",
							Status:        model.TaskStatusInProgress,
							AssigneeEmail: "designer@demo-org.com",
							DueInDays:     7,
							Comments: []commentSpec{
								{
									AuthorEmail: "designer@demo-org.com",
									Content:     "Started working on the homepage design. Will have mockups ready by Friday.",
								},
								{
									AuthorEmail: "pm@demo-org.com",
									Content:     "Great progress! Make sure to include the new branding elements.",
								},
							},
						},
						{
							Title:         "Implement Navigation",
							Description:   "Build the main navigation component",
							Status:        model.TaskStatusTodo,
							AssigneeEmail: "developer@demo-org.com",
							DueInDays:     14,
						},
						{
							Title:         "Content Migration",
							Description:   "Migrate existing content to the new design",
							Status:        model.TaskStatusDone,
							AssigneeEmail: "content@demo-org.com",
							DueInDays:     -3,
						},
					},
				},
				{
					Name:        "Mobile App Development",
					Description: "Develop a new mobile application for iOS and Android",
					Status:      model.ProjectStatusActive,
					DueInDays:   60,
					Tasks: []taskSpec{
						{
							Title:         "Setup React Native",
							Description:   "Initialize React Native project and configure development environment",
							Status:        model.TaskStatusDone,
							AssigneeEmail: "mobile@demo-org.com",
							DueInDays:     -5,
						},
						{
							Title:         "Design App Screens",
							Description:   "Create UI designs for all app screens",
							Status:        model.TaskStatusInProgress,
							AssigneeEmail: "designer@demo-org.com",
							DueInDays:     10,
							Comments: []commentSpec{
								{
									AuthorEmail: "designer@demo-org.com",
									Content:     "Completed the login and dashboard screens. Moving on to the main features.",
								},
							},
						},
					},
				},
				{
					Name:        "Marketing Campaign",
					Description: "Launch a comprehensive marketing campaign for Q4",
					Status:      model.ProjectStatusOnHold,
					DueInDays:   45,
				},
			},
		},
		{
			Name:         "Tech Startup Inc.",
			Slug:         "tech-startup",
			ContactEmail: "hello@techstartup.com",
			Projects: []projectSpec{
				{
					Name:        "MVP Development",
					Description: "Build the minimum viable product for our SaaS platform",
					Status:      model.ProjectStatusActive,
					DueInDays:   90,
					Tasks: []taskSpec{
						{
							Title:         "Database Schema Design",
							Description:   "Design the database schema for the MVP",
							Status:        model.TaskStatusDone,
							AssigneeEmail: "backend@techstartup.com",
							DueInDays:     -10,
						},
						{
							Title:         "User Authentication",
							Description:   "Implement user registration and login functionality",
							Status:        model.TaskStatusInProgress,
							AssigneeEmail: "backend@techstartup.com",
							DueInDays:     15,
							Comments: []commentSpec{
								{
									AuthorEmail: "backend@techstartup.com",
									Content:     "Authentication system is working well. Need to add password reset functionality.",
								},
							},
						},
					},
				},
			},
		},
	}
}

func seed(ctx context.Context, stores *store.Stores) error {
	now := time.Now().UTC()

	for _, orgData := range sampleData() {
		org, err := ensureOrganization(ctx, stores, orgData)
		if err != nil {
			return err
		}

		for _, projectData := range orgData.Projects {
			project, err := ensureProject(ctx, stores, org, projectData, now)
			if err != nil {
				return err
			}

			for _, taskData := range projectData.Tasks {
				task, err := ensureTask(ctx, stores, project, taskData, now)
				if err != nil {
					return err
				}

				for _, commentData := range taskData.Comments {
					if err := ensureComment(ctx, stores, task, commentData); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func ensureOrganization(ctx context.Context, stores *store.Stores, spec orgSpec) (*model.Organization, error) {
	if err := service.ValidateEmail(spec.ContactEmail); err != nil {
		return nil, err
	}

	slug := spec.Slug
	if slug == "" {
		derived, err := common.Slugify(spec.Name, spec.ContactEmail)
		if err != nil {
			return nil, err
		}
		slug = derived
	}

	org, err := stores.Organizations().GetBySlug(ctx, slug)
	if err == nil {
		return org, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	org = &model.Organization{
		ID:           id.New(),
		Name:         spec.Name,
		Slug:         slug,
		ContactEmail: spec.ContactEmail,
	}
	if err := stores.Organizations().Create(ctx, org); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "created organization", "name", org.Name, "slug", org.Slug)
	return org, nil
}

func ensureProject(ctx context.Context, stores *store.Stores, org *model.Organization, spec projectSpec, now time.Time) (*model.Project, error) {
	project, err := stores.Projects().GetByOrgAndName(ctx, org.ID, spec.Name)
	if err == nil {
		return project, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	due := now.AddDate(0, 0, spec.DueInDays).Truncate(24 * time.Hour)
	project = &model.Project{
		ID:             id.New(),
		OrganizationID: org.ID,
		Name:           spec.Name,
		Description:    spec.Description,
		Status:         spec.Status,
		DueDate:        &due,
	}
	if err := stores.Projects().Create(ctx, project); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "created project", "name", project.Name, "org", org.Slug)
	return project, nil
}

func ensureTask(ctx context.Context, stores *store.Stores, project *model.Project, spec taskSpec, now time.Time) (*model.Task, error) {
	task, err := stores.Tasks().GetByProjectAndTitle(ctx, project.ID, spec.Title)
	if err == nil {
		return task, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	due := now.AddDate(0, 0, spec.DueInDays)
	task = &model.Task{
		ID:            id.New(),
		ProjectID:     project.ID,
		Title:         spec.Title,
		Description:   spec.Description,
		Status:        spec.Status,
		AssigneeEmail: spec.AssigneeEmail,
		DueDate:       &due,
	}
	if err := stores.Tasks().Create(ctx, task); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "created task", "title", task.Title, "project", project.Name)
	return task, nil
}

func ensureComment(ctx context.Context, stores *store.Stores, task *model.Task, spec commentSpec) error {
	_, err := stores.Comments().GetByNaturalKey(ctx, task.ID, spec.AuthorEmail, spec.Content)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	comment := &model.TaskComment{
		ID:          id.New(),
		TaskID:      task.ID,
		Content:     spec.Content,
		AuthorEmail: spec.AuthorEmail,
	}
	if err := stores.Comments().Create(ctx, comment); err != nil {
		return err
	}
	slog.InfoContext(ctx, "created comment", "task", task.Title, "author", comment.AuthorEmail)
	return nil
}
