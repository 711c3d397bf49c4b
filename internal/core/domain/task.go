package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusCompleted TaskStatus = "COMPLETED"
	TaskStatusApproved  TaskStatus = "APPROVED"
)

// TaskTTL is the visibility window granted to a non-permanent task at
// creation and added again on every extension.
const TaskTTL = 30 * 24 * time.Hour

type Task struct {
	ID              string
	Title           string
	Description     *string
	SiteName        string
	Status          TaskStatus
	AssignedToID    string
	AssignedToName  string
	CreatedByID     string
	Cost            *float64
	CostDescription *string
	IsPermanent     bool
	ExpiresAt       *time.Time
	CreatedAt       time.Time
}

// IsLive reports whether the task belongs on the admin dashboard. Expired
// non-permanent tasks stay in storage; they are only hidden from the default
// listing.
func (t Task) IsLive(now time.Time) bool {
	if t.IsPermanent {
		return true
	}
	return t.ExpiresAt != nil && t.ExpiresAt.After(now)
}

type CreateTaskInput struct {
	Title        string
	Description  *string
	SiteName     string
	AssignedToID string
	IsPermanent  bool
}

type CompleteTaskInput struct {
	Cost            float64
	CostDescription *string
}
