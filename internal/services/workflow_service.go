package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/planhub/planhub/internal/models"
	"github.com/planhub/planhub/internal/repositories"
	"github.com/planhub/planhub/internal/utils"
)

func validStatusCategory(category string) bool {
	return utils.Contains([]string{
		models.StatusCategoryTodo, models.StatusCategoryInProgress, models.StatusCategoryDone,
	}, category)
}

type WorkflowService struct {
	workflowRepo *repositories.WorkflowRepository
	access       *AccessService
}

func NewWorkflowService(workflowRepo *repositories.WorkflowRepository, access *AccessService) *WorkflowService {
	return &WorkflowService{
		workflowRepo: workflowRepo,
		access:       access,
	}
}

func (s *WorkflowService) ListWorkflows(userID, orgID uuid.UUID) ([]models.Workflow, error) {
	if _, err := s.access.RequireOrgMember(userID, orgID); err != nil {
		return nil, err
	}

	return s.workflowRepo.ListByOrganization(orgID)
}

type CreateWorkflowRequest struct {
	Name     string `json:"name" binding:"required"`
	Statuses []struct {
		Name     string `json:"name" binding:"required"`
		Category string `json:"category,omitempty"`
	} `json:"statuses,omitempty"`
}

func (s *WorkflowService) CreateWorkflow(userID, orgID uuid.UUID, req CreateWorkflowRequest) (*models.Workflow, error) {
	if _, err := s.access.RequireOrgRole(userID, orgID, models.OrgRoleAdmin); err != nil {
		return nil, err
	}

	existing, err := s.workflowRepo.GetByOrgAndName(orgID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check workflow name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("workflow %q already exists", req.Name)
	}

	wf := &models.Workflow{
		OrganizationID: orgID,
		Name:           req.Name,
	}
	if err := s.workflowRepo.Create(wf); err != nil {
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}

	for i, def := range req.Statuses {
		if def.Category != "" && !validStatusCategory(def.Category) {
			return nil, fmt.Errorf("invalid category: %s", def.Category)
		}
		status := &models.TaskStatus{
			WorkflowID: wf.ID,
			Name:       def.Name,
			Category:   def.Category,
			Position:   i,
		}
		if err := s.workflowRepo.CreateStatus(status); err != nil {
			return nil, fmt.Errorf("failed to create status %q: %w", def.Name, err)
		}
	}

	return wf, nil
}

func (s *WorkflowService) ListStatuses(userID, workflowID uuid.UUID) ([]models.TaskStatus, error) {
	wf, err := s.workflowRepo.GetByID(workflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}
	if wf == nil {
		return nil, fmt.Errorf("workflow not found")
	}

	if _, err := s.access.RequireOrgMember(userID, wf.OrganizationID); err != nil {
		return nil, err
	}

	return s.workflowRepo.ListStatuses(workflowID)
}

type CreateStatusRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category,omitempty"`
	Position *int   `json:"position,omitempty"`
}

func (s *WorkflowService) CreateStatus(userID, workflowID uuid.UUID, req CreateStatusRequest) (*models.TaskStatus, error) {
	wf, err := s.workflowRepo.GetByID(workflowID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}
	if wf == nil {
		return nil, fmt.Errorf("workflow not found")
	}

	if _, err := s.access.RequireOrgRole(userID, wf.OrganizationID, models.OrgRoleAdmin); err != nil {
		return nil, err
	}

	if req.Category != "" && !validStatusCategory(req.Category) {
		return nil, fmt.Errorf("invalid category: %s", req.Category)
	}

	existing, err := s.workflowRepo.GetStatusByName(workflowID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check status name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("status %q already exists", req.Name)
	}

	position := 0
	if req.Position != nil {
		position = *req.Position
	} else {
		statuses, err := s.workflowRepo.ListStatuses(workflowID)
		if err != nil {
			return nil, fmt.Errorf("failed to list statuses: %w", err)
		}
		position = len(statuses)
	}

	status := &models.TaskStatus{
		WorkflowID: workflowID,
		Name:       req.Name,
		Category:   req.Category,
		Position:   position,
	}
	if err := s.workflowRepo.CreateStatus(status); err != nil {
		return nil, fmt.Errorf("failed to create status: %w", err)
	}

	return status, nil
}

// ReorderStatuses rewrites the positions of a workflow's statuses to match
// the given ID order.
func (s *WorkflowService) ReorderStatuses(userID, workflowID uuid.UUID, orderedIDs []uuid.UUID) error {
	wf, err := s.workflowRepo.GetByID(workflowID)
	if err != nil {
		return fmt.Errorf("failed to get workflow: %w", err)
	}
	if wf == nil {
		return fmt.Errorf("workflow not found")
	}

	if _, err := s.access.RequireOrgRole(userID, wf.OrganizationID, models.OrgRoleAdmin); err != nil {
		return err
	}

	statuses, err := s.workflowRepo.ListStatuses(workflowID)
	if err != nil {
		return fmt.Errorf("failed to list statuses: %w", err)
	}
	if len(orderedIDs) != len(statuses) {
		return fmt.Errorf("expected %d status IDs, got %d", len(statuses), len(orderedIDs))
	}

	known := make(map[uuid.UUID]bool, len(statuses))
	for _, status := range statuses {
		known[status.ID] = true
	}

	// Validate the whole request before touching any position.
	seen := make(map[uuid.UUID]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !known[id] {
			return fmt.Errorf("status %s does not belong to this workflow", id)
		}
		if seen[id] {
			return fmt.Errorf("status %s appears more than once", id)
		}
		seen[id] = true
	}

	for i, id := range orderedIDs {
		if err := s.workflowRepo.UpdateStatusPosition(id, i); err != nil {
			return fmt.Errorf("failed to reorder status %s: %w", id, err)
		}
	}

	return nil
}
