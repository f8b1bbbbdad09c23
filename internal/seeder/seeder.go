package seeder

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/planhub/planhub/internal/logging"
	"github.com/planhub/planhub/internal/models"
	"github.com/planhub/planhub/internal/repositories"
	"github.com/planhub/planhub/internal/utils"
)

// Seeder populates the database with demo data. Entities are created in
// dependency order; each stage looks up existing rows first, so running it
// against an already seeded database changes nothing. Individual failures
// are logged and skipped rather than aborting the run.
type Seeder struct {
	pool *pgxpool.Pool
	rng  *rand.Rand
	log  *logrus.Entry

	users       *repositories.UserRepository
	orgs        *repositories.OrganizationRepository
	workflows   *repositories.WorkflowRepository
	workspaces  *repositories.WorkspaceRepository
	projects    *repositories.ProjectRepository
	sprints     *repositories.SprintRepository
	tasks       *repositories.TaskRepository
	comments    *repositories.CommentRepository
	labels      *repositories.LabelRepository
	timeEntries *repositories.TimeEntryRepository
}

// New builds a Seeder. rngSeed pins the random generator so repeated runs
// produce identical time entries.
func New(pool *pgxpool.Pool, rngSeed int64) *Seeder {
	return &Seeder{
		pool: pool,
		rng:  rand.New(rand.NewSource(rngSeed)),
		log:  logging.C("seeder"),

		users:       repositories.NewUserRepository(pool),
		orgs:        repositories.NewOrganizationRepository(pool),
		workflows:   repositories.NewWorkflowRepository(pool),
		workspaces:  repositories.NewWorkspaceRepository(pool),
		projects:    repositories.NewProjectRepository(pool),
		sprints:     repositories.NewSprintRepository(pool),
		tasks:       repositories.NewTaskRepository(pool),
		comments:    repositories.NewCommentRepository(pool),
		labels:      repositories.NewLabelRepository(pool),
		timeEntries: repositories.NewTimeEntryRepository(pool),
	}
}

// Seed runs the full pipeline: users → organizations(+members) →
// workflows(+statuses) → workspaces(+members) → projects(+labels) →
// sprints → tasks → comments/labels/dependencies/watchers/time entries.
func (s *Seeder) Seed() error {
	s.log.Info("seeding demo data")

	admin, err := s.ensureAdmin()
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	usersByEmail := s.seedUsers()
	usersByEmail[admin.Email] = admin

	for _, orgFix := range demoOrgs {
		s.seedOrganization(orgFix, usersByEmail)
	}

	s.log.Info("seeding complete")
	return nil
}

// SeedAdmin creates only the admin account.
func (s *Seeder) SeedAdmin() error {
	admin, err := s.ensureAdmin()
	if err != nil {
		return err
	}
	s.log.Infof("admin account ready: %s", admin.Email)
	return nil
}

func (s *Seeder) ensureAdmin() (*models.User, error) {
	existing, err := s.users.FindUserByEmail(adminEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	hash, err := utils.Hash(adminPassword)
	if err != nil {
		return nil, err
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         "admin",
	}
	admin.Prepare()
	if err := s.users.Create(admin); err != nil {
		return nil, err
	}
	s.log.Infof("created admin user %s", adminEmail)
	return admin, nil
}

// clearOrder lists every table with demo data, children before parents.
var clearOrder = []string{
	"time_entries",
	"task_watchers",
	"task_dependencies",
	"task_labels",
	"comments",
	"tasks",
	"sprints",
	"labels",
	"projects",
	"workspace_members",
	"workspaces",
	"task_statuses",
	"workflows",
	"organization_members",
	"organizations",
	"sessions",
	"users",
}

// Clear deletes all demo data in reverse dependency order.
func (s *Seeder) Clear() error {
	ctx := context.Background()
	for _, table := range clearOrder {
		if _, err := s.pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
		s.log.Debugf("cleared %s", table)
	}
	s.log.Info("database cleared")
	return nil
}

// Reset clears everything and reseeds from scratch.
func (s *Seeder) Reset() error {
	if err := s.Clear(); err != nil {
		return err
	}
	return s.Seed()
}
