package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/planhub/planhub/internal/models"
	"github.com/planhub/planhub/internal/repositories"
)

// AccessService answers "may this user touch this resource" by walking the
// ownership chain up to the organization membership table.
type AccessService struct {
	orgRepo       *repositories.OrganizationRepository
	workspaceRepo *repositories.WorkspaceRepository
	projectRepo   *repositories.ProjectRepository
	taskRepo      *repositories.TaskRepository
}

func NewAccessService(
	orgRepo *repositories.OrganizationRepository,
	workspaceRepo *repositories.WorkspaceRepository,
	projectRepo *repositories.ProjectRepository,
	taskRepo *repositories.TaskRepository,
) *AccessService {
	return &AccessService{
		orgRepo:       orgRepo,
		workspaceRepo: workspaceRepo,
		projectRepo:   projectRepo,
		taskRepo:      taskRepo,
	}
}

// RequireOrgMember returns the membership or an error when the user does not
// belong to the organization.
func (s *AccessService) RequireOrgMember(userID, orgID uuid.UUID) (*models.OrganizationMember, error) {
	member, err := s.orgRepo.GetMember(orgID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if member == nil {
		return nil, fmt.Errorf("not a member of this organization")
	}
	return member, nil
}

// RequireOrgRole additionally checks the membership role against the allowed
// set (owner always passes).
func (s *AccessService) RequireOrgRole(userID, orgID uuid.UUID, roles ...string) (*models.OrganizationMember, error) {
	member, err := s.RequireOrgMember(userID, orgID)
	if err != nil {
		return nil, err
	}
	if member.Role == models.OrgRoleOwner {
		return member, nil
	}
	for _, role := range roles {
		if member.Role == role {
			return member, nil
		}
	}
	return nil, fmt.Errorf("insufficient role: %s", member.Role)
}

// ResolveWorkspace loads a workspace and verifies org membership.
func (s *AccessService) ResolveWorkspace(userID, workspaceID uuid.UUID) (*models.Workspace, error) {
	ws, err := s.workspaceRepo.GetByID(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if ws == nil {
		return nil, fmt.Errorf("workspace not found")
	}
	if _, err := s.RequireOrgMember(userID, ws.OrganizationID); err != nil {
		return nil, err
	}
	return ws, nil
}

// ResolveProject loads a project and verifies membership via its workspace.
func (s *AccessService) ResolveProject(userID, projectID uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("project not found")
	}
	if _, err := s.ResolveWorkspace(userID, project.WorkspaceID); err != nil {
		return nil, err
	}
	return project, nil
}

// ResolveTask loads a task and verifies membership via its project.
func (s *AccessService) ResolveTask(userID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("task not found")
	}
	if _, err := s.ResolveProject(userID, task.ProjectID); err != nil {
		return nil, err
	}
	return task, nil
}
