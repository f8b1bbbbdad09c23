package seeder

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestShouldCreateDependency(t *testing.T) {
	tests := []struct {
		name    string
		blocker string
		blocked string
		want    bool
	}{
		{"design blocks implement", "Design billing database schema", "Implement invoice API endpoints", true},
		{"implement blocks test", "Implement onboarding flow", "Test payment retry flow", true},
		{"test blocks deploy", "Test payment retry flow", "Deploy billing service to staging", true},
		{"design blocks deploy", "Design onboarding screens", "Release 2.4 to app stores", true},
		{"schema blocks api", "Plan database migration runbook", "Create API gateway configuration", true},
		{"same phase no edge", "Implement invoice API endpoints", "Build subscription webhooks", false},
		{"reverse order no edge", "Deploy billing service to staging", "Design billing database schema", false},
		{"unrelated titles no edge", "Fix rounding bug in tax calculation", "Verify backups before cutover", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldCreateDependency(tt.blocker, tt.blocked))
		})
	}
}

func TestDetermineWatchers(t *testing.T) {
	members := []memberFixture{
		{Email: "lead@example.com", Role: "owner", Title: "Tech Lead"},
		{Email: "ops@example.com", Role: "member", Title: "DevOps Engineer"},
		{Email: "designer@example.com", Role: "member", Title: "Product Designer"},
		{Email: "dev@example.com", Role: "member", Title: "Backend Engineer"},
	}

	t.Run("ops work attracts ops people", func(t *testing.T) {
		watchers := determineWatchers("Deploy billing service to staging", members)
		assert.Equal(t, []string{"ops@example.com"}, watchers)
	})

	t.Run("design work attracts designers and leads", func(t *testing.T) {
		watchers := determineWatchers("Design onboarding screens", members)
		assert.ElementsMatch(t, []string{"lead@example.com", "designer@example.com"}, watchers)
	})

	t.Run("plain work attracts nobody", func(t *testing.T) {
		assert.Empty(t, determineWatchers("Fix rounding bug in tax calculation", members))
	})
}

func TestLabelsForTask(t *testing.T) {
	labels := []labelFixture{
		{Name: "api"},
		{Name: "schema"},
		{Name: "bug"},
		{Name: "deploy"},
	}

	assert.Equal(t, []string{"api"}, labelsForTask(labels, "Implement invoice API endpoints"))
	assert.Equal(t, []string{"schema"}, labelsForTask(labels, "Design billing database schema"))
	assert.Equal(t, []string{"bug"}, labelsForTask(labels, "Fix rounding in tax calculation"))
	assert.Equal(t, []string{"deploy"}, labelsForTask(labels, "Deploy billing service to staging"))
	assert.Empty(t, labelsForTask(labels, "Write onboarding docs"))
}

func TestRandomTimeEntries(t *testing.T) {
	taskID := uuid.New()
	userID := uuid.New()

	t.Run("bounds hold", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 100; i++ {
			entries := randomTimeEntries(rng, taskID, userID)
			assert.LessOrEqual(t, len(entries), 3)
			for _, entry := range entries {
				assert.Equal(t, taskID, entry.TaskID)
				assert.Equal(t, userID, entry.UserID)
				assert.GreaterOrEqual(t, entry.DurationMinutes, 15)
				assert.LessOrEqual(t, entry.DurationMinutes, 240)
				assert.WithinDuration(t, time.Now(), entry.StartedAt, 15*24*time.Hour)
			}
		}
	})

	t.Run("same seed gives same entries", func(t *testing.T) {
		a := randomTimeEntries(rand.New(rand.NewSource(42)), taskID, userID)
		b := randomTimeEntries(rand.New(rand.NewSource(42)), taskID, userID)
		assert.Equal(t, len(a), len(b))
		for i := range a {
			assert.Equal(t, a[i].DurationMinutes, b[i].DurationMinutes)
		}
	})
}
