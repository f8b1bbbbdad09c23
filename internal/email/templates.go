package email

import (
	"bytes"
	"text/template"
)

// Template constants for transactional mail. Plain text; rendering happens
// at send time with RenderTemplate.

const WelcomeTemplate = `Subject: Welcome to PlanHub, {{.Name}}!

Hi {{.Name}},

Your account ({{.Email}}) is ready. Create an organization or accept an
invite to get started.

— The PlanHub team
`

const OrgInviteTemplate = `Subject: You've been added to {{.OrgName}} on PlanHub

Hi {{.Name}},

{{.InviterName}} added you to the organization "{{.OrgName}}" as {{.Role}}.
Log in to see its workspaces and projects.

— The PlanHub team
`

const TaskAssignedTemplate = `Subject: [{{.ProjectName}}] Task assigned to you: {{.TaskTitle}}

Hi {{.Name}},

You were assigned the task "{{.TaskTitle}}" in project {{.ProjectName}}.
Priority: {{.Priority}}{{if .DueAt}}, due {{.DueAt}}{{end}}.

— The PlanHub team
`

// RenderTemplate executes one of the template constants against data.
func RenderTemplate(tmpl string, data interface{}) (string, error) {
	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
