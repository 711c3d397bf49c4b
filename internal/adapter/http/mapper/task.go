package mapper

import (
	"time"

	"github.com/AErenK/site-yonetim/internal/adapter/http/dto"
	"github.com/AErenK/site-yonetim/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:             task.ID,
		Title:          task.Title,
		SiteName:       task.SiteName,
		Status:         string(task.Status),
		AssignedToID:   task.AssignedToID,
		AssignedToName: task.AssignedToName,
		CreatedByID:    task.CreatedByID,
		IsPermanent:    task.IsPermanent,
		CreatedAt:      task.CreatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.Cost != nil {
		value := *task.Cost
		item.Cost = &value
	}

	if task.CostDescription != nil {
		value := *task.CostDescription
		item.CostDescription = &value
	}

	if task.ExpiresAt != nil {
		value := task.ExpiresAt.Format(time.RFC3339)
		item.ExpiresAt = &value
	}

	return item
}
