package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/AErenK/site-yonetim/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Insert(ctx context.Context, task domain.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, taskID string) (domain.Task, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ListLive(ctx context.Context, now time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, now)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListByAssignee(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) SetCompleted(ctx context.Context, taskID string, cost float64, costDescription *string) error {
	return m.Called(ctx, taskID, cost, costDescription).Error(0)
}

func (m *taskRepositoryMock) SetStatus(ctx context.Context, taskID string, status domain.TaskStatus) error {
	return m.Called(ctx, taskID, status).Error(0)
}

func (m *taskRepositoryMock) SetExpiry(ctx context.Context, taskID string, isPermanent bool, expiresAt *time.Time) error {
	return m.Called(ctx, taskID, isPermanent, expiresAt).Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, taskID string) error {
	return m.Called(ctx, taskID).Error(0)
}

func (m *taskRepositoryMock) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Insert(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *userRepositoryMock) GetByID(ctx context.Context, userID string) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *userRepositoryMock) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepositoryMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepositoryMock) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *userRepositoryMock) DeleteByRole(ctx context.Context, role domain.Role) error {
	return m.Called(ctx, role).Error(0)
}

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) NotifyInApp(ctx context.Context, userID, message string) error {
	return m.Called(ctx, userID, message).Error(0)
}

func (m *notifierMock) NotifyPush(ctx context.Context, userID, message string) {
	m.Called(ctx, userID, message)
}

type notificationRepositoryMock struct {
	mock.Mock
}

func (m *notificationRepositoryMock) Insert(ctx context.Context, notification domain.Notification) error {
	return m.Called(ctx, notification).Error(0)
}

func (m *notificationRepositoryMock) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)

	var notifications []domain.Notification
	if value := args.Get(0); value != nil {
		notifications = value.([]domain.Notification)
	}
	return notifications, args.Error(1)
}

func (m *notificationRepositoryMock) MarkRead(ctx context.Context, notificationID string) error {
	return m.Called(ctx, notificationID).Error(0)
}

func (m *notificationRepositoryMock) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type subscriptionRepositoryMock struct {
	mock.Mock
}

func (m *subscriptionRepositoryMock) Insert(ctx context.Context, sub domain.PushSubscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *subscriptionRepositoryMock) ListByUser(ctx context.Context, userID string) ([]domain.PushSubscription, error) {
	args := m.Called(ctx, userID)

	var subs []domain.PushSubscription
	if value := args.Get(0); value != nil {
		subs = value.([]domain.PushSubscription)
	}
	return subs, args.Error(1)
}

func (m *subscriptionRepositoryMock) Delete(ctx context.Context, subscriptionID string) error {
	return m.Called(ctx, subscriptionID).Error(0)
}

func (m *subscriptionRepositoryMock) DeleteByEndpoint(ctx context.Context, userID, endpoint string) error {
	return m.Called(ctx, userID, endpoint).Error(0)
}

func (m *subscriptionRepositoryMock) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type pushChannelMock struct {
	mock.Mock
}

func (m *pushChannelMock) Send(ctx context.Context, sub domain.PushSubscription, payload domain.PushPayload) error {
	return m.Called(ctx, sub, payload).Error(0)
}
