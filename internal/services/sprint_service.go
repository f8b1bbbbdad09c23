package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/planhub/planhub/internal/logging"
	"github.com/planhub/planhub/internal/models"
	"github.com/planhub/planhub/internal/repositories"
)

type SprintService struct {
	sprintRepo *repositories.SprintRepository
	access     *AccessService
}

func NewSprintService(sprintRepo *repositories.SprintRepository, access *AccessService) *SprintService {
	return &SprintService{
		sprintRepo: sprintRepo,
		access:     access,
	}
}

type CreateSprintRequest struct {
	Name     string     `json:"name" binding:"required"`
	Goal     *string    `json:"goal,omitempty"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

func (s *SprintService) CreateSprint(userID, projectID uuid.UUID, req CreateSprintRequest) (*models.Sprint, error) {
	if _, err := s.access.ResolveProject(userID, projectID); err != nil {
		return nil, err
	}

	if req.StartsAt != nil && req.EndsAt != nil && req.EndsAt.Before(*req.StartsAt) {
		return nil, fmt.Errorf("sprint cannot end before it starts")
	}

	existing, err := s.sprintRepo.GetByProjectAndName(projectID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check sprint name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("sprint %q already exists", req.Name)
	}

	sprint := &models.Sprint{
		ProjectID: projectID,
		Name:      req.Name,
		Goal:      req.Goal,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
	}
	if err := s.sprintRepo.Create(sprint); err != nil {
		return nil, fmt.Errorf("failed to create sprint: %w", err)
	}

	return sprint, nil
}

func (s *SprintService) GetSprint(userID, sprintID uuid.UUID) (*models.Sprint, error) {
	sprint, err := s.sprintRepo.GetByID(sprintID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sprint: %w", err)
	}
	if sprint == nil {
		return nil, fmt.Errorf("sprint not found")
	}

	if _, err := s.access.ResolveProject(userID, sprint.ProjectID); err != nil {
		return nil, err
	}

	return sprint, nil
}

func (s *SprintService) ListSprints(userID, projectID uuid.UUID) ([]models.Sprint, error) {
	if _, err := s.access.ResolveProject(userID, projectID); err != nil {
		return nil, err
	}

	return s.sprintRepo.ListByProject(projectID)
}

type UpdateSprintRequest struct {
	Name     *string    `json:"name,omitempty"`
	Goal     *string    `json:"goal,omitempty"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

func (s *SprintService) UpdateSprint(userID, sprintID uuid.UUID, req UpdateSprintRequest) (*models.Sprint, error) {
	sprint, err := s.GetSprint(userID, sprintID)
	if err != nil {
		return nil, err
	}

	if sprint.State == models.SprintStateCompleted {
		return nil, fmt.Errorf("cannot update a completed sprint")
	}

	if req.Name != nil {
		sprint.Name = *req.Name
	}
	if req.Goal != nil {
		sprint.Goal = req.Goal
	}
	if req.StartsAt != nil {
		sprint.StartsAt = req.StartsAt
	}
	if req.EndsAt != nil {
		sprint.EndsAt = req.EndsAt
	}

	if err := s.sprintRepo.Update(sprint); err != nil {
		return nil, fmt.Errorf("failed to update sprint: %w", err)
	}

	return sprint, nil
}

func (s *SprintService) DeleteSprint(userID, sprintID uuid.UUID) error {
	if _, err := s.GetSprint(userID, sprintID); err != nil {
		return err
	}

	return s.sprintRepo.Delete(sprintID)
}

// StartSprint transitions planned → active.
func (s *SprintService) StartSprint(userID, sprintID uuid.UUID) (*models.Sprint, error) {
	sprint, err := s.GetSprint(userID, sprintID)
	if err != nil {
		return nil, err
	}

	if sprint.State != models.SprintStatePlanned {
		return nil, fmt.Errorf("sprint is %s, only planned sprints can start", sprint.State)
	}

	if sprint.StartsAt == nil {
		now := time.Now()
		sprint.StartsAt = &now
		if err := s.sprintRepo.Update(sprint); err != nil {
			return nil, fmt.Errorf("failed to set sprint start: %w", err)
		}
	}

	if err := s.sprintRepo.UpdateState(sprintID, models.SprintStateActive); err != nil {
		return nil, fmt.Errorf("failed to start sprint: %w", err)
	}
	sprint.State = models.SprintStateActive

	return sprint, nil
}

// CompleteSprint transitions active → completed and detaches unfinished
// tasks so they return to the project backlog.
func (s *SprintService) CompleteSprint(userID, sprintID uuid.UUID) (*models.Sprint, error) {
	sprint, err := s.GetSprint(userID, sprintID)
	if err != nil {
		return nil, err
	}

	if sprint.State != models.SprintStateActive {
		return nil, fmt.Errorf("sprint is %s, only active sprints can complete", sprint.State)
	}

	moved, err := s.sprintRepo.ClearUnfinishedTasks(sprintID)
	if err != nil {
		return nil, fmt.Errorf("failed to detach unfinished tasks: %w", err)
	}
	if moved > 0 {
		logging.C("sprints").Infof("moved %d unfinished tasks out of sprint %s", moved, sprint.Name)
	}

	if err := s.sprintRepo.UpdateState(sprintID, models.SprintStateCompleted); err != nil {
		return nil, fmt.Errorf("failed to complete sprint: %w", err)
	}
	sprint.State = models.SprintStateCompleted

	return sprint, nil
}
