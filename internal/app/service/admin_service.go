package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/internal/core/ports"
)

// AdminService carries the trusted maintenance surface. Reset wipes all
// subscriptions, notifications and tasks, and every EMPLOYEE account; ADMIN
// accounts survive.
type AdminService struct {
	tasks         ports.TaskRepository
	notifications ports.NotificationRepository
	subscriptions ports.PushSubscriptionRepository
	users         ports.UserRepository
}

func NewAdminService(
	tasks ports.TaskRepository,
	notifications ports.NotificationRepository,
	subscriptions ports.PushSubscriptionRepository,
	users ports.UserRepository,
) *AdminService {
	return &AdminService{
		tasks:         tasks,
		notifications: notifications,
		subscriptions: subscriptions,
		users:         users,
	}
}

func (s *AdminService) Reset(ctx context.Context, actor domain.Identity) error {
	if !actor.IsAdmin() {
		return domain.ErrUnauthorized
	}

	// Children first so employee deletion does not trip foreign keys.
	if err := s.subscriptions.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.notifications.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.tasks.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.users.DeleteByRole(ctx, domain.RoleEmployee); err != nil {
		return err
	}

	zap.L().Info("system reset completed", zap.String("actor_id", actor.ID))
	return nil
}

var _ ports.AdminService = (*AdminService)(nil)
