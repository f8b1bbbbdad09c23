package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/planhub/planhub/internal/database"
	"github.com/planhub/planhub/internal/email"
	"github.com/planhub/planhub/internal/models"
	"github.com/planhub/planhub/internal/repositories"
)

func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("planhub_test"),
		postgres.WithUsername("planhub"),
		postgres.WithPassword("planhub"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		_ = ctr.Terminate(ctx)
	})

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(pool))

	return pool
}

// testEnv wires the full service layer over a disposable database.
type testEnv struct {
	users     *repositories.UserRepository
	workflows *repositories.WorkflowRepository

	orgService       *OrganizationService
	workspaceService *WorkspaceService
	workflowService  *WorkflowService
	projectService   *ProjectService
	sprintService    *SprintService
	taskService      *TaskService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	pool := setupTestPool(t)

	userRepo := repositories.NewUserRepository(pool)
	orgRepo := repositories.NewOrganizationRepository(pool)
	workspaceRepo := repositories.NewWorkspaceRepository(pool)
	workflowRepo := repositories.NewWorkflowRepository(pool)
	projectRepo := repositories.NewProjectRepository(pool)
	sprintRepo := repositories.NewSprintRepository(pool)
	taskRepo := repositories.NewTaskRepository(pool)
	commentRepo := repositories.NewCommentRepository(pool)
	labelRepo := repositories.NewLabelRepository(pool)
	timeEntryRepo := repositories.NewTimeEntryRepository(pool)

	mailer := email.NewLogMailer()
	access := NewAccessService(orgRepo, workspaceRepo, projectRepo, taskRepo)

	return &testEnv{
		users:            userRepo,
		workflows:        workflowRepo,
		orgService:       NewOrganizationService(orgRepo, workflowRepo, userRepo, access, mailer),
		workspaceService: NewWorkspaceService(workspaceRepo, access),
		workflowService:  NewWorkflowService(workflowRepo, access),
		projectService:   NewProjectService(projectRepo, workflowRepo, taskRepo, labelRepo, access),
		sprintService:    NewSprintService(sprintRepo, access),
		taskService: NewTaskService(
			taskRepo, workflowRepo, sprintRepo, commentRepo, labelRepo, timeEntryRepo, userRepo, access, mailer,
		),
	}
}

func (e *testEnv) createUser(t *testing.T, name, address string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: address, PasswordHash: "not-a-real-hash", Role: "user"}
	require.NoError(t, e.users.Create(user))
	return user
}

func (e *testEnv) createOrg(t *testing.T, ownerID uuid.UUID, name string) *models.Organization {
	t.Helper()
	org, err := e.orgService.CreateOrganization(ownerID, CreateOrganizationRequest{Name: name})
	require.NoError(t, err)
	return org
}

// projectFixture is an org/workspace/project chain owned by one user.
type projectFixture struct {
	Org       *models.Organization
	Workspace *models.Workspace
	Project   *models.Project
}

func (e *testEnv) createProject(t *testing.T, ownerID uuid.UUID) *projectFixture {
	t.Helper()
	org := e.createOrg(t, ownerID, "Test Org")
	ws, err := e.workspaceService.CreateWorkspace(ownerID, org.ID, CreateWorkspaceRequest{Name: "Main"})
	require.NoError(t, err)
	project, err := e.projectService.CreateProject(ownerID, ws.ID, CreateProjectRequest{Name: "Demo Project"})
	require.NoError(t, err)
	return &projectFixture{Org: org, Workspace: ws, Project: project}
}

func (e *testEnv) doneStatus(t *testing.T, workflowID uuid.UUID) models.TaskStatus {
	t.Helper()
	statuses, err := e.workflows.ListStatuses(workflowID)
	require.NoError(t, err)
	for _, status := range statuses {
		if status.Category == models.StatusCategoryDone {
			return status
		}
	}
	t.Fatal("workflow has no done-category status")
	return models.TaskStatus{}
}
