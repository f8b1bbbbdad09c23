package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/planhub/planhub/internal/models"
	"github.com/planhub/planhub/internal/repositories"
	"github.com/planhub/planhub/internal/utils"
)

type ProjectService struct {
	projectRepo  *repositories.ProjectRepository
	workflowRepo *repositories.WorkflowRepository
	taskRepo     *repositories.TaskRepository
	labelRepo    *repositories.LabelRepository
	access       *AccessService
}

func NewProjectService(
	projectRepo *repositories.ProjectRepository,
	workflowRepo *repositories.WorkflowRepository,
	taskRepo *repositories.TaskRepository,
	labelRepo *repositories.LabelRepository,
	access *AccessService,
) *ProjectService {
	return &ProjectService{
		projectRepo:  projectRepo,
		workflowRepo: workflowRepo,
		taskRepo:     taskRepo,
		labelRepo:    labelRepo,
		access:       access,
	}
}

type CreateProjectRequest struct {
	Name        string     `json:"name" binding:"required"`
	Slug        string     `json:"slug,omitempty"`
	Description *string    `json:"description,omitempty"`
	WorkflowID  *uuid.UUID `json:"workflow_id,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

func (s *ProjectService) CreateProject(userID, workspaceID uuid.UUID, req CreateProjectRequest) (*models.Project, error) {
	ws, err := s.access.ResolveWorkspace(userID, workspaceID)
	if err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	existing, err := s.projectRepo.GetByWorkspaceAndSlug(workspaceID, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("project slug %q is taken", slug)
	}

	// Fall back to the organization's default workflow.
	workflowID := req.WorkflowID
	if workflowID == nil {
		wf, err := s.workflowRepo.GetDefaultByOrganization(ws.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("failed to get default workflow: %w", err)
		}
		if wf == nil {
			return nil, fmt.Errorf("organization has no default workflow")
		}
		workflowID = &wf.ID
	} else {
		wf, err := s.workflowRepo.GetByID(*workflowID)
		if err != nil {
			return nil, fmt.Errorf("failed to get workflow: %w", err)
		}
		if wf == nil || wf.OrganizationID != ws.OrganizationID {
			return nil, fmt.Errorf("workflow does not belong to this organization")
		}
	}

	project := &models.Project{
		WorkspaceID: workspaceID,
		WorkflowID:  *workflowID,
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

func (s *ProjectService) GetProject(userID, projectID uuid.UUID) (*models.Project, error) {
	return s.access.ResolveProject(userID, projectID)
}

func (s *ProjectService) ListProjects(userID, workspaceID uuid.UUID) ([]models.Project, error) {
	if _, err := s.access.ResolveWorkspace(userID, workspaceID); err != nil {
		return nil, err
	}

	return s.projectRepo.ListByWorkspace(workspaceID)
}

type UpdateProjectRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

func (s *ProjectService) UpdateProject(userID, projectID uuid.UUID, req UpdateProjectRequest) (*models.Project, error) {
	project, err := s.access.ResolveProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = req.Description
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

func (s *ProjectService) DeleteProject(userID, projectID uuid.UUID) error {
	project, err := s.access.ResolveProject(userID, projectID)
	if err != nil {
		return err
	}

	ws, err := s.access.ResolveWorkspace(userID, project.WorkspaceID)
	if err != nil {
		return err
	}
	if _, err := s.access.RequireOrgRole(userID, ws.OrganizationID, models.OrgRoleAdmin); err != nil {
		return err
	}

	return s.projectRepo.Delete(projectID)
}

// BoardColumn is one status lane of a project board.
type BoardColumn struct {
	Status models.TaskStatus `json:"status"`
	Tasks  []models.Task     `json:"tasks"`
}

// BuildBoard groups tasks into status lanes, preserving status order and
// task position order within each lane.
func BuildBoard(statuses []models.TaskStatus, tasks []models.Task) []BoardColumn {
	columns := make([]BoardColumn, len(statuses))
	index := make(map[uuid.UUID]int, len(statuses))

	for i, status := range statuses {
		columns[i] = BoardColumn{Status: status, Tasks: []models.Task{}}
		index[status.ID] = i
	}

	for _, task := range tasks {
		if i, ok := index[task.StatusID]; ok {
			columns[i].Tasks = append(columns[i].Tasks, task)
		}
	}

	return columns
}

// GetBoard returns the kanban view of a project: one column per workflow
// status with its tasks in position order.
func (s *ProjectService) GetBoard(userID, projectID uuid.UUID) ([]BoardColumn, error) {
	project, err := s.access.ResolveProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	statuses, err := s.workflowRepo.ListStatuses(project.WorkflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}

	tasks, err := s.taskRepo.ListByProject(projectID, repositories.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return BuildBoard(statuses, tasks), nil
}

type CreateLabelRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color,omitempty"`
}

func (s *ProjectService) CreateLabel(userID, projectID uuid.UUID, req CreateLabelRequest) (*models.Label, error) {
	if _, err := s.access.ResolveProject(userID, projectID); err != nil {
		return nil, err
	}

	existing, err := s.labelRepo.GetByProjectAndName(projectID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check label: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("label %q already exists", req.Name)
	}

	label := &models.Label{
		ProjectID: projectID,
		Name:      req.Name,
		Color:     req.Color,
	}
	if err := s.labelRepo.Create(label); err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}

	return label, nil
}

func (s *ProjectService) ListLabels(userID, projectID uuid.UUID) ([]models.Label, error) {
	if _, err := s.access.ResolveProject(userID, projectID); err != nil {
		return nil, err
	}

	return s.labelRepo.ListByProject(projectID)
}

// DeleteLabel removes a project label; task_labels rows cascade away.
func (s *ProjectService) DeleteLabel(userID, projectID, labelID uuid.UUID) error {
	if _, err := s.access.ResolveProject(userID, projectID); err != nil {
		return err
	}

	labels, err := s.labelRepo.ListByProject(projectID)
	if err != nil {
		return fmt.Errorf("failed to list labels: %w", err)
	}
	for _, label := range labels {
		if label.ID == labelID {
			return s.labelRepo.Delete(labelID)
		}
	}

	return fmt.Errorf("label does not belong to this project")
}
