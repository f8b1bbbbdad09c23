package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/planhub/planhub/internal/email"
	"github.com/planhub/planhub/internal/logging"
	"github.com/planhub/planhub/internal/models"
	"github.com/planhub/planhub/internal/repositories"
	"github.com/planhub/planhub/internal/utils"
)

type TaskService struct {
	taskRepo      *repositories.TaskRepository
	workflowRepo  *repositories.WorkflowRepository
	sprintRepo    *repositories.SprintRepository
	commentRepo   *repositories.CommentRepository
	labelRepo     *repositories.LabelRepository
	timeEntryRepo *repositories.TimeEntryRepository
	userRepo      *repositories.UserRepository
	access        *AccessService
	mailer        email.Mailer
}

func NewTaskService(
	taskRepo *repositories.TaskRepository,
	workflowRepo *repositories.WorkflowRepository,
	sprintRepo *repositories.SprintRepository,
	commentRepo *repositories.CommentRepository,
	labelRepo *repositories.LabelRepository,
	timeEntryRepo *repositories.TimeEntryRepository,
	userRepo *repositories.UserRepository,
	access *AccessService,
	mailer email.Mailer,
) *TaskService {
	return &TaskService{
		taskRepo:      taskRepo,
		workflowRepo:  workflowRepo,
		sprintRepo:    sprintRepo,
		commentRepo:   commentRepo,
		labelRepo:     labelRepo,
		timeEntryRepo: timeEntryRepo,
		userRepo:      userRepo,
		access:        access,
		mailer:        mailer,
	}
}

type CreateTaskRequest struct {
	Title         string     `json:"title" binding:"required"`
	Description   *string    `json:"description,omitempty"`
	Priority      string     `json:"priority,omitempty"`
	StatusID      *uuid.UUID `json:"status_id,omitempty"`
	SprintID      *uuid.UUID `json:"sprint_id,omitempty"`
	AssigneeID    *uuid.UUID `json:"assignee_id,omitempty"`
	EstimateHours *float32   `json:"estimate_hours,omitempty"`
	DueAt         *time.Time `json:"due_at,omitempty"`
}

func (s *TaskService) CreateTask(userID, projectID uuid.UUID, req CreateTaskRequest) (*models.Task, error) {
	project, err := s.access.ResolveProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	if req.Priority != "" && !utils.Contains([]string{
		models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityUrgent,
	}, req.Priority) {
		return nil, fmt.Errorf("invalid priority: %s", req.Priority)
	}

	// New tasks land in the first workflow status unless one is given.
	statusID := req.StatusID
	if statusID == nil {
		statuses, err := s.workflowRepo.ListStatuses(project.WorkflowID)
		if err != nil {
			return nil, fmt.Errorf("failed to list statuses: %w", err)
		}
		if len(statuses) == 0 {
			return nil, fmt.Errorf("project workflow has no statuses")
		}
		statusID = &statuses[0].ID
	} else if err := s.checkStatus(project, *statusID); err != nil {
		return nil, err
	}

	if req.SprintID != nil {
		sprint, err := s.sprintRepo.GetByID(*req.SprintID)
		if err != nil {
			return nil, fmt.Errorf("failed to get sprint: %w", err)
		}
		if sprint == nil || sprint.ProjectID != projectID {
			return nil, fmt.Errorf("sprint does not belong to this project")
		}
	}

	maxPos, err := s.taskRepo.MaxPositionForStatus(*statusID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute position: %w", err)
	}

	task := &models.Task{
		ProjectID:     projectID,
		SprintID:      req.SprintID,
		StatusID:      *statusID,
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		AssigneeID:    req.AssigneeID,
		ReporterID:    userID,
		EstimateHours: req.EstimateHours,
		DueAt:         req.DueAt,
		Position:      maxPos + 1,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if task.AssigneeID != nil && *task.AssigneeID != userID {
		s.sendAssignedEmail(task, project)
	}

	return task, nil
}

func (s *TaskService) checkStatus(project *models.Project, statusID uuid.UUID) error {
	status, err := s.workflowRepo.GetStatusByID(statusID)
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	if status == nil || status.WorkflowID != project.WorkflowID {
		return fmt.Errorf("status does not belong to the project workflow")
	}
	return nil
}

func (s *TaskService) sendAssignedEmail(task *models.Task, project *models.Project) {
	log := logging.C("tasks")

	assignee, err := s.userRepo.FindUserByID(*task.AssigneeID)
	if err != nil || assignee == nil {
		log.Warnf("skipping assignment email, assignee %s not found", task.AssigneeID)
		return
	}

	data := map[string]string{
		"Name":        assignee.Name,
		"TaskTitle":   task.Title,
		"ProjectName": project.Name,
		"Priority":    task.Priority,
	}
	if task.DueAt != nil {
		data["DueAt"] = task.DueAt.Format("2006-01-02")
	}

	body, err := email.RenderTemplate(email.TaskAssignedTemplate, data)
	if err != nil {
		log.Warnf("failed to render assignment email: %v", err)
		return
	}

	if err := s.mailer.Send(assignee.Email, body); err != nil {
		log.Warnf("failed to send assignment email to %s: %v", assignee.Email, err)
	}
}

func (s *TaskService) GetTask(userID, taskID uuid.UUID) (*models.Task, error) {
	return s.access.ResolveTask(userID, taskID)
}

type ListTasksRequest struct {
	SprintID   *uuid.UUID
	StatusID   *uuid.UUID
	AssigneeID *uuid.UUID
	Search     string
}

func (s *TaskService) ListTasks(userID, projectID uuid.UUID, req ListTasksRequest) ([]models.Task, error) {
	if _, err := s.access.ResolveProject(userID, projectID); err != nil {
		return nil, err
	}

	return s.taskRepo.ListByProject(projectID, repositories.TaskFilter{
		SprintID:   req.SprintID,
		StatusID:   req.StatusID,
		AssigneeID: req.AssigneeID,
		Search:     req.Search,
	})
}

type UpdateTaskRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Priority      *string    `json:"priority,omitempty"`
	SprintID      *uuid.UUID `json:"sprint_id,omitempty"`
	EstimateHours *float32   `json:"estimate_hours,omitempty"`
	DueAt         *time.Time `json:"due_at,omitempty"`
}

func (s *TaskService) UpdateTask(userID, taskID uuid.UUID, req UpdateTaskRequest) (*models.Task, error) {
	task, err := s.access.ResolveTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Priority != nil {
		if !utils.Contains([]string{
			models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityUrgent,
		}, *req.Priority) {
			return nil, fmt.Errorf("invalid priority: %s", *req.Priority)
		}
		task.Priority = *req.Priority
	}
	if req.SprintID != nil {
		sprint, err := s.sprintRepo.GetByID(*req.SprintID)
		if err != nil {
			return nil, fmt.Errorf("failed to get sprint: %w", err)
		}
		if sprint == nil || sprint.ProjectID != task.ProjectID {
			return nil, fmt.Errorf("sprint does not belong to this project")
		}
		task.SprintID = req.SprintID
	}
	if req.EstimateHours != nil {
		task.EstimateHours = req.EstimateHours
	}
	if req.DueAt != nil {
		task.DueAt = req.DueAt
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

func (s *TaskService) DeleteTask(userID, taskID uuid.UUID) error {
	if _, err := s.access.ResolveTask(userID, taskID); err != nil {
		return err
	}

	return s.taskRepo.Delete(taskID)
}

type MoveTaskRequest struct {
	StatusID uuid.UUID `json:"status_id" binding:"required"`
	Position *int      `json:"position,omitempty"`
}

// MoveTask places a task in another status lane, appending when no
// position is given.
func (s *TaskService) MoveTask(userID, taskID uuid.UUID, req MoveTaskRequest) (*models.Task, error) {
	task, err := s.access.ResolveTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	project, err := s.access.ResolveProject(userID, task.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := s.checkStatus(project, req.StatusID); err != nil {
		return nil, err
	}

	position := 0
	if req.Position != nil {
		position = *req.Position
	} else {
		maxPos, err := s.taskRepo.MaxPositionForStatus(req.StatusID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute position: %w", err)
		}
		position = maxPos + 1
	}

	if err := s.taskRepo.Move(taskID, req.StatusID, position); err != nil {
		return nil, fmt.Errorf("failed to move task: %w", err)
	}

	task.StatusID = req.StatusID
	task.Position = position
	return task, nil
}

type AssignTaskRequest struct {
	AssigneeID *uuid.UUID `json:"assignee_id"` // null unassigns
}

func (s *TaskService) AssignTask(userID, taskID uuid.UUID, req AssignTaskRequest) (*models.Task, error) {
	task, err := s.access.ResolveTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Assign(taskID, req.AssigneeID); err != nil {
		return nil, fmt.Errorf("failed to assign task: %w", err)
	}
	task.AssigneeID = req.AssigneeID

	if req.AssigneeID != nil && *req.AssigneeID != userID {
		if project, err := s.access.ResolveProject(userID, task.ProjectID); err == nil {
			s.sendAssignedEmail(task, project)
		}
	}

	return task, nil
}

// Comments

type CreateCommentRequest struct {
	Body string `json:"body" binding:"required"`
}

func (s *TaskService) AddComment(userID, taskID uuid.UUID, req CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.access.ResolveTask(userID, taskID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		TaskID:   taskID,
		AuthorID: userID,
		Body:     req.Body,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	// Commenting implies interest.
	if err := s.taskRepo.AddWatcher(taskID, userID); err != nil {
		logging.C("tasks").Warnf("failed to add commenter as watcher: %v", err)
	}

	return comment, nil
}

func (s *TaskService) ListComments(userID, taskID uuid.UUID) ([]models.Comment, error) {
	if _, err := s.access.ResolveTask(userID, taskID); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByTask(taskID)
}

// DeleteComment removes a comment; only its author may do so.
func (s *TaskService) DeleteComment(userID, taskID, commentID uuid.UUID) error {
	if _, err := s.access.ResolveTask(userID, taskID); err != nil {
		return err
	}

	return s.commentRepo.DeleteByIDAndAuthor(commentID, userID)
}

// Watchers

func (s *TaskService) Watch(userID, taskID uuid.UUID) error {
	if _, err := s.access.ResolveTask(userID, taskID); err != nil {
		return err
	}

	return s.taskRepo.AddWatcher(taskID, userID)
}

func (s *TaskService) Unwatch(userID, taskID uuid.UUID) error {
	if _, err := s.access.ResolveTask(userID, taskID); err != nil {
		return err
	}

	return s.taskRepo.RemoveWatcher(taskID, userID)
}

func (s *TaskService) ListWatchers(userID, taskID uuid.UUID) ([]uuid.UUID, error) {
	if _, err := s.access.ResolveTask(userID, taskID); err != nil {
		return nil, err
	}

	return s.taskRepo.ListWatchers(taskID)
}

// Labels

func (s *TaskService) AddLabel(userID, taskID, labelID uuid.UUID) error {
	task, err := s.access.ResolveTask(userID, taskID)
	if err != nil {
		return err
	}

	labels, err := s.labelRepo.ListByProject(task.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to list labels: %w", err)
	}
	found := false
	for _, label := range labels {
		if label.ID == labelID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("label does not belong to this project")
	}

	return s.labelRepo.AssignToTask(taskID, labelID)
}

func (s *TaskService) RemoveLabel(userID, taskID, labelID uuid.UUID) error {
	if _, err := s.access.ResolveTask(userID, taskID); err != nil {
		return err
	}

	return s.labelRepo.RemoveFromTask(taskID, labelID)
}

func (s *TaskService) ListLabels(userID, taskID uuid.UUID) ([]models.Label, error) {
	if _, err := s.access.ResolveTask(userID, taskID); err != nil {
		return nil, err
	}

	return s.labelRepo.ListForTask(taskID)
}

// Dependencies

type AddDependencyRequest struct {
	DependsOnID uuid.UUID `json:"depends_on_id" binding:"required"`
}

func (s *TaskService) AddDependency(userID, taskID uuid.UUID, req AddDependencyRequest) (*models.TaskDependency, error) {
	task, err := s.access.ResolveTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	if taskID == req.DependsOnID {
		return nil, fmt.Errorf("a task cannot depend on itself")
	}

	other, err := s.taskRepo.GetByID(req.DependsOnID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dependency target: %w", err)
	}
	if other == nil || other.ProjectID != task.ProjectID {
		return nil, fmt.Errorf("dependency target must be in the same project")
	}

	// Reject direct cycles; deeper cycle detection is left to the client.
	reverse, err := s.taskRepo.HasDependency(req.DependsOnID, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to check reverse dependency: %w", err)
	}
	if reverse {
		return nil, fmt.Errorf("dependency would create a cycle")
	}

	dep := &models.TaskDependency{
		TaskID:      taskID,
		DependsOnID: req.DependsOnID,
	}
	if err := s.taskRepo.AddDependency(dep); err != nil {
		return nil, fmt.Errorf("failed to add dependency: %w", err)
	}

	return dep, nil
}

func (s *TaskService) ListDependencies(userID, taskID uuid.UUID) ([]models.TaskDependency, error) {
	if _, err := s.access.ResolveTask(userID, taskID); err != nil {
		return nil, err
	}

	return s.taskRepo.ListDependencies(taskID)
}

// Time entries

type CreateTimeEntryRequest struct {
	StartedAt       time.Time `json:"started_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required"`
	Note            *string   `json:"note,omitempty"`
}

func (s *TaskService) AddTimeEntry(userID, taskID uuid.UUID, req CreateTimeEntryRequest) (*models.TimeEntry, error) {
	if _, err := s.access.ResolveTask(userID, taskID); err != nil {
		return nil, err
	}

	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	entry := &models.TimeEntry{
		TaskID:          taskID,
		UserID:          userID,
		StartedAt:       req.StartedAt,
		DurationMinutes: req.DurationMinutes,
		Note:            req.Note,
	}
	if err := s.timeEntryRepo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// TimeReport is the logged time of one task: the raw entries plus their sum.
type TimeReport struct {
	Entries      []models.TimeEntry `json:"entries"`
	TotalMinutes int64              `json:"total_minutes"`
}

func (s *TaskService) ListTimeEntries(userID, taskID uuid.UUID) (*TimeReport, error) {
	if _, err := s.access.ResolveTask(userID, taskID); err != nil {
		return nil, err
	}

	entries, err := s.timeEntryRepo.ListByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	total, err := s.timeEntryRepo.TotalMinutesByTask(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum time entries: %w", err)
	}
	if entries == nil {
		entries = []models.TimeEntry{}
	}

	return &TimeReport{Entries: entries, TotalMinutes: total}, nil
}

// DeleteTimeEntry removes a time entry; only the user who logged it may do so.
func (s *TaskService) DeleteTimeEntry(userID, taskID, entryID uuid.UUID) error {
	if _, err := s.access.ResolveTask(userID, taskID); err != nil {
		return err
	}

	entries, err := s.timeEntryRepo.ListByTask(taskID)
	if err != nil {
		return fmt.Errorf("failed to list time entries: %w", err)
	}
	for _, entry := range entries {
		if entry.ID == entryID {
			if entry.UserID != userID {
				return fmt.Errorf("cannot delete another user's time entry")
			}
			return s.timeEntryRepo.Delete(entryID)
		}
	}

	return fmt.Errorf("time entry not found")
}
