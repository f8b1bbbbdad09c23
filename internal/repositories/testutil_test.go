package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/planhub/planhub/internal/database"
	"github.com/planhub/planhub/internal/models"
)

// setupTestPool starts a throwaway Postgres container and runs the
// migrations against it. Tests that call it are skipped in -short mode and
// when Docker is unavailable.
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

// projectChain is a fully wired org → workspace → project hierarchy with a
// workflow, its statuses and a reporter user, the minimum needed to create
// tasks.
type projectChain struct {
	User     *models.User
	Org      *models.Organization
	Workflow *models.Workflow
	Statuses []models.TaskStatus
	Project  *models.Project
}

func createProjectChain(t *testing.T, pool *pgxpool.Pool) projectChain {
	t.Helper()

	users := NewUserRepository(pool)
	orgs := NewOrganizationRepository(pool)
	workflows := NewWorkflowRepository(pool)
	workspaces := NewWorkspaceRepository(pool)
	projects := NewProjectRepository(pool)

	user := &models.User{Name: "Test User", Email: "test@example.com", PasswordHash: "x", Role: "user"}
	require.NoError(t, users.Create(user))

	org := &models.Organization{Name: "Test Org", Slug: "test-org"}
	require.NoError(t, orgs.Create(org))
	require.NoError(t, orgs.AddMember(&models.OrganizationMember{
		OrganizationID: org.ID, UserID: user.ID, Role: models.OrgRoleOwner,
	}))

	wf := &models.Workflow{OrganizationID: org.ID, Name: "Default", IsDefault: true}
	require.NoError(t, workflows.Create(wf))

	for i, name := range []string{"To Do", "In Progress", "Done"} {
		category := models.StatusCategoryTodo
		switch name {
		case "In Progress":
			category = models.StatusCategoryInProgress
		case "Done":
			category = models.StatusCategoryDone
		}
		status := &models.TaskStatus{WorkflowID: wf.ID, Name: name, Category: category, Position: i}
		require.NoError(t, workflows.CreateStatus(status))
	}
	statuses, err := workflows.ListStatuses(wf.ID)
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	ws := &models.Workspace{OrganizationID: org.ID, Name: "Test WS", Slug: "test-ws"}
	require.NoError(t, workspaces.Create(ws))

	project := &models.Project{WorkspaceID: ws.ID, WorkflowID: wf.ID, Name: "Test Project", Slug: "test-project"}
	require.NoError(t, projects.Create(project))

	return projectChain{User: user, Org: org, Workflow: wf, Statuses: statuses, Project: project}
}
