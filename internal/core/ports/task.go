package ports

import (
	"context"
	"time"

	"github.com/AErenK/site-yonetim/internal/core/domain"
)

type TaskRepository interface {
	Insert(ctx context.Context, task domain.Task) error
	GetByID(ctx context.Context, taskID string) (domain.Task, error)
	ListLive(ctx context.Context, now time.Time) ([]domain.Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]domain.Task, error)
	SetCompleted(ctx context.Context, taskID string, cost float64, costDescription *string) error
	SetStatus(ctx context.Context, taskID string, status domain.TaskStatus) error
	SetExpiry(ctx context.Context, taskID string, isPermanent bool, expiresAt *time.Time) error
	Delete(ctx context.Context, taskID string) error
	DeleteAll(ctx context.Context) error
}

type TaskService interface {
	Create(ctx context.Context, actor domain.Identity, input domain.CreateTaskInput) (domain.Task, error)
	Complete(ctx context.Context, actor domain.Identity, taskID string, input domain.CompleteTaskInput) error
	Approve(ctx context.Context, actor domain.Identity, taskID string) error
	Delete(ctx context.Context, actor domain.Identity, taskID string) error
	Extend(ctx context.Context, actor domain.Identity, taskID string) (domain.Task, error)
	TogglePermanent(ctx context.Context, actor domain.Identity, taskID string) (domain.Task, error)
	Get(ctx context.Context, actor domain.Identity, taskID string) (domain.Task, error)
	ListDashboard(ctx context.Context, actor domain.Identity) ([]domain.Task, error)
	ListAssigned(ctx context.Context, actor domain.Identity) ([]domain.Task, error)
}
