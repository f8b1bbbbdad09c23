package seeder

// Fixture definitions for the demo dataset. Everything here is fabricated
// data for local development; the seeder looks records up by slug, email or
// title before inserting so repeated runs are no-ops.

type userFixture struct {
	Name     string
	Email    string
	Password string
	Title    string
}

type memberFixture struct {
	Email string
	Role  string
	Title string
}

type labelFixture struct {
	Name  string
	Color string
}

type sprintFixture struct {
	Name string
	Goal string
}

type taskFixture struct {
	Title       string
	Description string
	Priority    string
	Assignee    string // fixture user email
	Sprint      string // fixture sprint name
	Comments    []string
}

type projectFixture struct {
	Name        string
	Slug        string
	Description string
	Labels      []labelFixture
	Sprints     []sprintFixture
	Tasks       []taskFixture
}

type workspaceFixture struct {
	Name        string
	Slug        string
	Description string
	Projects    []projectFixture
}

type orgFixture struct {
	Name        string
	Slug        string
	Description string
	Members     []memberFixture
	Workspaces  []workspaceFixture
}

const (
	adminEmail    = "admin@planhub.dev"
	adminPassword = "changeme"
)

var demoUsers = []userFixture{
	{Name: "Ava Martinez", Email: "ava@planhub.dev", Password: "password123", Title: "Tech Lead"},
	{Name: "Ben Okafor", Email: "ben@planhub.dev", Password: "password123", Title: "Backend Engineer"},
	{Name: "Chloe Nguyen", Email: "chloe@planhub.dev", Password: "password123", Title: "Product Designer"},
	{Name: "Daniel Kim", Email: "daniel@planhub.dev", Password: "password123", Title: "DevOps Engineer"},
	{Name: "Elena Rossi", Email: "elena@planhub.dev", Password: "password123", Title: "QA Engineer"},
	{Name: "Felix Braun", Email: "felix@planhub.dev", Password: "password123", Title: "Frontend Engineer"},
}

var demoOrgs = []orgFixture{
	{
		Name:        "Acme Industries",
		Slug:        "acme",
		Description: "Demo organization for local development",
		Members: []memberFixture{
			{Email: "ava@planhub.dev", Role: "owner", Title: "Tech Lead"},
			{Email: "ben@planhub.dev", Role: "admin", Title: "Backend Engineer"},
			{Email: "chloe@planhub.dev", Role: "member", Title: "Product Designer"},
			{Email: "daniel@planhub.dev", Role: "member", Title: "DevOps Engineer"},
			{Email: "elena@planhub.dev", Role: "member", Title: "QA Engineer"},
			{Email: "felix@planhub.dev", Role: "member", Title: "Frontend Engineer"},
		},
		Workspaces: []workspaceFixture{
			{
				Name:        "Engineering",
				Slug:        "engineering",
				Description: "Product engineering teams",
				Projects: []projectFixture{
					{
						Name:        "Billing Platform",
						Slug:        "billing-platform",
						Description: "Subscription billing and invoicing",
						Labels: []labelFixture{
							{Name: "api", Color: "#1f77b4"},
							{Name: "schema", Color: "#9467bd"},
							{Name: "bug", Color: "#d62728"},
							{Name: "deploy", Color: "#2ca02c"},
						},
						Sprints: []sprintFixture{
							{Name: "Sprint 1", Goal: "Schema and core API in place"},
							{Name: "Sprint 2", Goal: "Invoicing flows end to end"},
						},
						Tasks: []taskFixture{
							{
								Title:       "Design billing database schema",
								Description: "Model subscriptions, invoices and payment attempts.",
								Priority:    "high",
								Assignee:    "ava@planhub.dev",
								Sprint:      "Sprint 1",
								Comments:    []string{"Draft ERD attached to the doc.", "Please include proration tables."},
							},
							{
								Title:       "Implement invoice API endpoints",
								Description: "CRUD plus PDF export endpoint.",
								Priority:    "high",
								Assignee:    "ben@planhub.dev",
								Sprint:      "Sprint 1",
								Comments:    []string{"Pagination should match the org listing convention."},
							},
							{
								Title:       "Build subscription webhooks",
								Description: "Emit events on renewal and cancellation.",
								Priority:    "medium",
								Assignee:    "ben@planhub.dev",
								Sprint:      "Sprint 2",
							},
							{
								Title:       "Test payment retry flow",
								Description: "Cover dunning edge cases.",
								Priority:    "medium",
								Assignee:    "elena@planhub.dev",
								Sprint:      "Sprint 2",
							},
							{
								Title:       "Deploy billing service to staging",
								Description: "Wire up secrets and run the smoke suite.",
								Priority:    "urgent",
								Assignee:    "daniel@planhub.dev",
								Sprint:      "Sprint 2",
								Comments:    []string{"Blocked until the retry tests are green."},
							},
							{
								Title:       "Fix rounding bug in tax calculation",
								Description: "Totals drift by a cent on multi-line invoices.",
								Priority:    "urgent",
								Assignee:    "ben@planhub.dev",
							},
						},
					},
					{
						Name:        "Mobile App",
						Slug:        "mobile-app",
						Description: "iOS and Android client",
						Labels: []labelFixture{
							{Name: "design", Color: "#e377c2"},
							{Name: "bug", Color: "#d62728"},
							{Name: "release", Color: "#2ca02c"},
						},
						Sprints: []sprintFixture{
							{Name: "Sprint 1", Goal: "Onboarding revamp"},
						},
						Tasks: []taskFixture{
							{
								Title:       "Design onboarding screens",
								Description: "Three-step signup with workspace selection.",
								Priority:    "high",
								Assignee:    "chloe@planhub.dev",
								Sprint:      "Sprint 1",
							},
							{
								Title:       "Implement onboarding flow",
								Description: "Hook screens up to the auth API.",
								Priority:    "high",
								Assignee:    "felix@planhub.dev",
								Sprint:      "Sprint 1",
							},
							{
								Title:       "Release 2.4 to app stores",
								Description: "Cut the branch, tag and submit for review.",
								Priority:    "medium",
								Assignee:    "daniel@planhub.dev",
							},
						},
					},
				},
			},
			{
				Name:        "Operations",
				Slug:        "operations",
				Description: "Infrastructure and internal tooling",
				Projects: []projectFixture{
					{
						Name:        "Infra Migration",
						Slug:        "infra-migration",
						Description: "Move workloads to the new cluster",
						Labels: []labelFixture{
							{Name: "migration", Color: "#9467bd"},
							{Name: "deploy", Color: "#2ca02c"},
						},
						Sprints: []sprintFixture{
							{Name: "Cutover", Goal: "Zero-downtime switch"},
						},
						Tasks: []taskFixture{
							{
								Title:       "Plan database migration runbook",
								Description: "Step-by-step cutover with rollback points.",
								Priority:    "high",
								Assignee:    "daniel@planhub.dev",
								Sprint:      "Cutover",
							},
							{
								Title:       "Create API gateway configuration",
								Description: "Route table for the new cluster ingress.",
								Priority:    "medium",
								Assignee:    "daniel@planhub.dev",
								Sprint:      "Cutover",
							},
							{
								Title:       "Verify backups before cutover",
								Description: "Restore drill on a scratch instance.",
								Priority:    "urgent",
								Assignee:    "elena@planhub.dev",
								Sprint:      "Cutover",
							},
						},
					},
				},
			},
		},
	},
}
