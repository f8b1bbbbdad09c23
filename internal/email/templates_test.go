package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcomeTemplate(t *testing.T) {
	body, err := RenderTemplate(WelcomeTemplate, map[string]string{
		"Name":  "Ava",
		"Email": "ava@planhub.dev",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(body, "Subject: Welcome to PlanHub, Ava!"))
	assert.Contains(t, body, "ava@planhub.dev")
}

func TestRenderOrgInviteTemplate(t *testing.T) {
	body, err := RenderTemplate(OrgInviteTemplate, map[string]string{
		"Name":        "Ben",
		"InviterName": "Ava Martinez",
		"OrgName":     "Acme Industries",
		"Role":        "admin",
	})
	require.NoError(t, err)

	assert.Contains(t, body, `Ava Martinez added you to the organization "Acme Industries" as admin.`)
}

func TestRenderTaskAssignedTemplate(t *testing.T) {
	t.Run("with due date", func(t *testing.T) {
		body, err := RenderTemplate(TaskAssignedTemplate, map[string]string{
			"Name":        "Ben",
			"TaskTitle":   "Implement invoice API endpoints",
			"ProjectName": "Billing Platform",
			"Priority":    "high",
			"DueAt":       "2026-09-15",
		})
		require.NoError(t, err)
		assert.Contains(t, body, "Priority: high, due 2026-09-15.")
	})

	t.Run("without due date", func(t *testing.T) {
		body, err := RenderTemplate(TaskAssignedTemplate, map[string]string{
			"Name":        "Ben",
			"TaskTitle":   "Fix rounding bug",
			"ProjectName": "Billing Platform",
			"Priority":    "urgent",
		})
		require.NoError(t, err)
		assert.Contains(t, body, "Priority: urgent.")
		assert.NotContains(t, body, "due")
	})
}

func TestRenderTemplateRejectsBadSyntax(t *testing.T) {
	_, err := RenderTemplate("{{.Broken", nil)
	assert.Error(t, err)
}
