package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AErenK/site-yonetim/internal/core/domain"
)

func TestUserService_Delete_RejectsNonAdmin(t *testing.T) {
	s := NewUserService(new(userRepositoryMock))
	require.ErrorIs(t, s.Delete(context.Background(), employeeActor, "emp-2"), domain.ErrUnauthorized)
}

func TestUserService_Delete_RejectsSelfDeletion(t *testing.T) {
	users := new(userRepositoryMock)
	s := NewUserService(users)

	require.ErrorIs(t, s.Delete(context.Background(), adminActor, adminActor.ID), domain.ErrSelfDeletion)
	users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserService_Delete_SurfacesReferentialConflict(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("Delete", mock.Anything, "emp-1").Return(domain.ErrUserHasRecords).Once()

	s := NewUserService(users)
	require.ErrorIs(t, s.Delete(context.Background(), adminActor, "emp-1"), domain.ErrUserHasRecords)
}

func TestUserService_Delete_RemovesEmployee(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("Delete", mock.Anything, "emp-1").Return(nil).Once()

	s := NewUserService(users)
	require.NoError(t, s.Delete(context.Background(), adminActor, "emp-1"))
	users.AssertExpectations(t)
}

func TestUserService_List_RequiresAdmin(t *testing.T) {
	s := NewUserService(new(userRepositoryMock))
	_, err := s.List(context.Background(), employeeActor)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUserService_List_ReturnsUsers(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("List", mock.Anything).Return([]domain.User{{ID: "admin-1"}, {ID: "emp-1"}}, nil).Once()

	s := NewUserService(users)
	got, err := s.List(context.Background(), adminActor)

	require.NoError(t, err)
	require.Len(t, got, 2)
}
