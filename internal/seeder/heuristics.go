package seeder

import (
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/planhub/planhub/internal/models"
)

// Demo-data heuristics. These are deliberately crude keyword matches used
// only to fabricate plausible-looking relationships between fixture tasks;
// nothing in the product relies on them.

// taskPhases orders work phases so that a title matching an earlier phase
// can block a title matching a later one.
var taskPhases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(design|plan|spec)\b`),
	regexp.MustCompile(`(?i)\b(implement|build|create|add)\b`),
	regexp.MustCompile(`(?i)\b(test|verify|qa)\b`),
	regexp.MustCompile(`(?i)\b(deploy|release|ship)\b`),
}

var (
	schemaPattern = regexp.MustCompile(`(?i)\b(schema|migration|database)\b`)
	apiPattern    = regexp.MustCompile(`(?i)\b(api|endpoint)\b`)
)

func titlePhase(title string) int {
	for i, pattern := range taskPhases {
		if pattern.MatchString(title) {
			return i
		}
	}
	return -1
}

// shouldCreateDependency reports whether blockedTitle looks like work that
// naturally comes after blockerTitle.
func shouldCreateDependency(blockerTitle, blockedTitle string) bool {
	if schemaPattern.MatchString(blockerTitle) && apiPattern.MatchString(blockedTitle) {
		return true
	}

	blockerPhase := titlePhase(blockerTitle)
	blockedPhase := titlePhase(blockedTitle)
	if blockerPhase < 0 || blockedPhase < 0 {
		return false
	}
	return blockerPhase < blockedPhase
}

var (
	opsTaskPattern    = regexp.MustCompile(`(?i)\b(deploy|release|infra|migration|cutover)\b`)
	designTaskPattern = regexp.MustCompile(`(?i)\b(design|ui|ux|screen)\b`)
)

func memberHasTitle(member memberFixture, keywords ...string) bool {
	title := strings.ToLower(member.Title)
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// determineWatchers infers which members would plausibly follow a task from
// its title: ops-flavored work attracts ops people, design work attracts
// designers and leads.
func determineWatchers(taskTitle string, members []memberFixture) []string {
	var watchers []string
	for _, member := range members {
		switch {
		case opsTaskPattern.MatchString(taskTitle) && memberHasTitle(member, "ops", "sre", "infra"):
			watchers = append(watchers, member.Email)
		case designTaskPattern.MatchString(taskTitle) && memberHasTitle(member, "design", "lead"):
			watchers = append(watchers, member.Email)
		}
	}
	return watchers
}

// labelsForTask picks project labels whose names occur in the task title.
// "fix" counts as a bug.
func labelsForTask(labels []labelFixture, taskTitle string) []string {
	title := strings.ToLower(taskTitle)
	var names []string
	for _, label := range labels {
		name := strings.ToLower(label.Name)
		if strings.Contains(title, name) || (name == "bug" && strings.Contains(title, "fix")) {
			names = append(names, label.Name)
		}
	}
	return names
}

// randomTimeEntries fabricates 0-3 work log entries of 15 minutes to 4
// hours each, started within the last two weeks.
func randomTimeEntries(rng *rand.Rand, taskID, userID uuid.UUID) []models.TimeEntry {
	count := rng.Intn(4)
	entries := make([]models.TimeEntry, 0, count)
	for i := 0; i < count; i++ {
		minutes := 15 + rng.Intn(226)
		startedAt := time.Now().Add(-time.Duration(rng.Intn(14*24)) * time.Hour)
		entries = append(entries, models.TimeEntry{
			TaskID:          taskID,
			UserID:          userID,
			StartedAt:       startedAt,
			DurationMinutes: minutes,
		})
	}
	return entries
}
