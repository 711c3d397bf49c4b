package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/internal/core/ports"
)

// TaskService owns the PENDING -> COMPLETED -> APPROVED lifecycle and the
// notification side effects of every transition. Durable writes must succeed
// for an operation to report success; the notification and push steps that
// follow are best-effort and never roll the write back.
type TaskService struct {
	tasks    ports.TaskRepository
	users    ports.UserRepository
	notifier ports.Notifier
	now      func() time.Time
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, notifier ports.Notifier) *TaskService {
	return &TaskService{
		tasks:    tasks,
		users:    users,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *TaskService) Create(ctx context.Context, actor domain.Identity, input domain.CreateTaskInput) (domain.Task, error) {
	if !actor.IsAdmin() {
		return domain.Task{}, domain.ErrUnauthorized
	}

	title := strings.TrimSpace(input.Title)
	siteName := strings.TrimSpace(input.SiteName)
	if title == "" || siteName == "" || strings.TrimSpace(input.AssignedToID) == "" {
		return domain.Task{}, domain.ErrValidation
	}

	now := s.now()
	task := domain.Task{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  input.Description,
		SiteName:     siteName,
		Status:       domain.TaskStatusPending,
		AssignedToID: input.AssignedToID,
		CreatedByID:  actor.ID,
		IsPermanent:  input.IsPermanent,
		CreatedAt:    now,
	}
	if !input.IsPermanent {
		expiresAt := now.Add(domain.TaskTTL)
		task.ExpiresAt = &expiresAt
	}

	if err := s.tasks.Insert(ctx, task); err != nil {
		return domain.Task{}, err
	}

	s.notifyInApp(ctx, task.AssignedToID, fmt.Sprintf("Yeni görev atandı: %s (%s)", task.Title, task.SiteName))
	s.notifier.NotifyPush(ctx, task.AssignedToID, fmt.Sprintf("Yeni görev: %s - %s", task.Title, task.SiteName))

	return task, nil
}

func (s *TaskService) Complete(ctx context.Context, actor domain.Identity, taskID string, input domain.CompleteTaskInput) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	if err := s.tasks.SetCompleted(ctx, taskID, input.Cost, input.CostDescription); err != nil {
		return err
	}

	s.notifyInApp(ctx, task.CreatedByID, fmt.Sprintf("%s görevi tamamladı: %s. Onay bekleniyor.", actor.Name, task.Title))

	pushMsg := fmt.Sprintf("%s görevi tamamladı: %s", actor.Name, task.Title)
	s.notifier.NotifyPush(ctx, task.CreatedByID, pushMsg)

	// Broadcast to every other admin so approval does not depend on the
	// creator being around. Best-effort, independent per recipient.
	admins, err := s.users.ListByRole(ctx, domain.RoleAdmin)
	if err != nil {
		zap.L().Error("failed to list admins for completion broadcast", zap.String("task_id", taskID), zap.Error(err))
		return nil
	}
	for _, admin := range admins {
		if admin.ID == task.CreatedByID {
			continue
		}
		s.notifier.NotifyPush(ctx, admin.ID, pushMsg)
	}

	return nil
}

func (s *TaskService) Approve(ctx context.Context, actor domain.Identity, taskID string) error {
	if !actor.IsAdmin() {
		return domain.ErrUnauthorized
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	if err := s.tasks.SetStatus(ctx, taskID, domain.TaskStatusApproved); err != nil {
		return err
	}

	message := fmt.Sprintf("Göreviniz onaylandı: %s", task.Title)
	s.notifyInApp(ctx, task.AssignedToID, message)
	s.notifier.NotifyPush(ctx, task.AssignedToID, message)

	return nil
}

func (s *TaskService) Delete(ctx context.Context, actor domain.Identity, taskID string) error {
	if !actor.IsAdmin() {
		return domain.ErrUnauthorized
	}
	return s.tasks.Delete(ctx, taskID)
}

// Extend pushes the expiry out by another 30 days. Extensions chain: the new
// window is added to the current expiry, not to now. Extending a permanent
// task turns it into a time-limited one.
func (s *TaskService) Extend(ctx context.Context, actor domain.Identity, taskID string) (domain.Task, error) {
	if !actor.IsAdmin() {
		return domain.Task{}, domain.ErrUnauthorized
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	var expiresAt time.Time
	if task.ExpiresAt != nil {
		expiresAt = task.ExpiresAt.Add(domain.TaskTTL)
	} else {
		expiresAt = s.now().Add(domain.TaskTTL)
	}

	if err := s.tasks.SetExpiry(ctx, taskID, false, &expiresAt); err != nil {
		return domain.Task{}, err
	}

	task.IsPermanent = false
	task.ExpiresAt = &expiresAt
	return task, nil
}

// TogglePermanent flips the permanence flag. Turning permanence off assigns a
// fresh 30-day window; the previous expiry is not restored.
func (s *TaskService) TogglePermanent(ctx context.Context, actor domain.Identity, taskID string) (domain.Task, error) {
	if !actor.IsAdmin() {
		return domain.Task{}, domain.ErrUnauthorized
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	isPermanent := !task.IsPermanent
	var expiresAt *time.Time
	if !isPermanent {
		value := s.now().Add(domain.TaskTTL)
		expiresAt = &value
	}

	if err := s.tasks.SetExpiry(ctx, taskID, isPermanent, expiresAt); err != nil {
		return domain.Task{}, err
	}

	task.IsPermanent = isPermanent
	task.ExpiresAt = expiresAt
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, actor domain.Identity, taskID string) (domain.Task, error) {
	return s.tasks.GetByID(ctx, taskID)
}

// ListDashboard returns the admin view: live tasks only. Expired
// non-permanent tasks are hidden here but remain retrievable by id.
func (s *TaskService) ListDashboard(ctx context.Context, actor domain.Identity) ([]domain.Task, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	return s.tasks.ListLive(ctx, s.now())
}

// ListAssigned returns every task assigned to the caller, expired or not.
func (s *TaskService) ListAssigned(ctx context.Context, actor domain.Identity) ([]domain.Task, error) {
	return s.tasks.ListByAssignee(ctx, actor.ID)
}

func (s *TaskService) notifyInApp(ctx context.Context, userID, message string) {
	if err := s.notifier.NotifyInApp(ctx, userID, message); err != nil {
		zap.L().Error("failed to store notification", zap.String("user_id", userID), zap.Error(err))
	}
}

var _ ports.TaskService = (*TaskService)(nil)
