package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AErenK/site-yonetim/internal/core/domain"
)

func TestAdminService_Reset_RequiresAdmin(t *testing.T) {
	s := NewAdminService(new(taskRepositoryMock), new(notificationRepositoryMock), new(subscriptionRepositoryMock), new(userRepositoryMock))
	require.ErrorIs(t, s.Reset(context.Background(), employeeActor), domain.ErrUnauthorized)
}

func TestAdminService_Reset_WipesEverythingButAdmins(t *testing.T) {
	tasks := new(taskRepositoryMock)
	notifications := new(notificationRepositoryMock)
	subscriptions := new(subscriptionRepositoryMock)
	users := new(userRepositoryMock)

	subscriptions.On("DeleteAll", mock.Anything).Return(nil).Once()
	notifications.On("DeleteAll", mock.Anything).Return(nil).Once()
	tasks.On("DeleteAll", mock.Anything).Return(nil).Once()
	users.On("DeleteByRole", mock.Anything, domain.RoleEmployee).Return(nil).Once()

	s := NewAdminService(tasks, notifications, subscriptions, users)
	require.NoError(t, s.Reset(context.Background(), adminActor))

	tasks.AssertExpectations(t)
	notifications.AssertExpectations(t)
	subscriptions.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestAdminService_Reset_StopsOnFirstFailure(t *testing.T) {
	tasks := new(taskRepositoryMock)
	notifications := new(notificationRepositoryMock)
	subscriptions := new(subscriptionRepositoryMock)
	users := new(userRepositoryMock)

	subscriptions.On("DeleteAll", mock.Anything).Return(nil).Once()
	notifications.On("DeleteAll", mock.Anything).Return(errors.New("db is down")).Once()

	s := NewAdminService(tasks, notifications, subscriptions, users)
	require.Error(t, s.Reset(context.Background(), adminActor))

	tasks.AssertNotCalled(t, "DeleteAll", mock.Anything)
	users.AssertNotCalled(t, "DeleteByRole", mock.Anything, mock.Anything)
}
