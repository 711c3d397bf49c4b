package dto

type TaskItem struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     *string  `json:"description,omitempty"`
	SiteName        string   `json:"site_name"`
	Status          string   `json:"status"`
	AssignedToID    string   `json:"assigned_to_id"`
	AssignedToName  string   `json:"assigned_to_name,omitempty"`
	CreatedByID     string   `json:"created_by_id"`
	Cost            *float64 `json:"cost,omitempty"`
	CostDescription *string  `json:"cost_description,omitempty"`
	IsPermanent     bool     `json:"is_permanent"`
	ExpiresAt       *string  `json:"expires_at,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

type CreateTaskRequest struct {
	Title        string  `json:"title" binding:"required,max=255"`
	Description  *string `json:"description" binding:"omitempty,max=65535"`
	SiteName     string  `json:"site_name" binding:"required,max=255"`
	AssignedToID string  `json:"assigned_to_id" binding:"required"`
	IsPermanent  bool    `json:"is_permanent"`
}

// CompleteTaskRequest carries the cost as a raw string on purpose: the form
// accepts anything and bad input coerces to zero instead of failing.
type CompleteTaskRequest struct {
	Cost            string  `json:"cost"`
	CostDescription *string `json:"cost_description" binding:"omitempty,max=65535"`
}
