package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AErenK/site-yonetim/internal/adapter/http/dto"
	"github.com/AErenK/site-yonetim/internal/adapter/http/mapper"
	"github.com/AErenK/site-yonetim/internal/adapter/http/middleware"
	"github.com/AErenK/site-yonetim/internal/adapter/http/validation"
	"github.com/AErenK/site-yonetim/internal/core/ports"
	"github.com/AErenK/site-yonetim/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListDashboard returns live tasks for the admin dashboard, newest first.
func (h *TaskHandler) ListDashboard(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)

	tasks, err := h.taskService.ListDashboard(c.Request.Context(), actor)
	if err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to list dashboard tasks", zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailListTasks)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

// ListAssigned returns every task assigned to the caller, ignoring expiry.
func (h *TaskHandler) ListAssigned(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)

	tasks, err := h.taskService.ListAssigned(c.Request.Context(), actor)
	if err != nil {
		zap.L().Error("failed to list assigned tasks", zap.String("user_id", actor.ID), zap.Error(err))
		respondDomainError(c, lang, err, apierrors.MsgFailListTasks)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) Get(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)

	taskID := strings.TrimSpace(c.Param("id"))
	task, err := h.taskService.Get(c.Request.Context(), actor, taskID)
	if err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to fetch task", zap.String("task_id", taskID), zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailGetTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) Create(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingFields, lang))
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingFields, lang))
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), actor, input)
	if err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to create task", zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailCreateTask)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) Complete(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)
	taskID := strings.TrimSpace(c.Param("id"))

	var req dto.CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, lang))
		return
	}

	input := validation.BuildCompleteTaskInput(req)
	if err := h.taskService.Complete(c.Request.Context(), actor, taskID, input); err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to complete task", zap.String("task_id", taskID), zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailCompleteTask)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) Approve(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)
	taskID := strings.TrimSpace(c.Param("id"))

	if err := h.taskService.Approve(c.Request.Context(), actor, taskID); err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to approve task", zap.String("task_id", taskID), zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailApproveTask)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) Extend(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)
	taskID := strings.TrimSpace(c.Param("id"))

	task, err := h.taskService.Extend(c.Request.Context(), actor, taskID)
	if err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to extend task", zap.String("task_id", taskID), zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailExtendTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) TogglePermanent(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)
	taskID := strings.TrimSpace(c.Param("id"))

	task, err := h.taskService.TogglePermanent(c.Request.Context(), actor, taskID)
	if err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to toggle task permanence", zap.String("task_id", taskID), zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailToggleTask)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	lang := middleware.GetLang(c)
	actor, _ := middleware.GetIdentity(c)
	taskID := strings.TrimSpace(c.Param("id"))

	if err := h.taskService.Delete(c.Request.Context(), actor, taskID); err != nil {
		if !isDomainError(err) {
			zap.L().Error("failed to delete task", zap.String("task_id", taskID), zap.Error(err))
		}
		respondDomainError(c, lang, err, apierrors.MsgFailDeleteTask)
		return
	}

	c.Status(http.StatusNoContent)
}
