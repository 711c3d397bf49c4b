package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/internal/core/ports"
)

const insertTaskQuery = `
INSERT INTO tasks (id, title, description, site_name, status, assigned_to_id, created_by_id, is_permanent, expires_at, created_at)
VALUES (:id, :title, :description, :site_name, :status, :assigned_to_id, :created_by_id, :is_permanent, :expires_at, :created_at);
`

const selectTaskQuery = `
SELECT t.*, u.name AS assigned_to_name
FROM tasks t
JOIN users u ON u.id = t.assigned_to_id
`

const getTaskByIDQuery = selectTaskQuery + `WHERE t.id = ?;`

const listLiveTasksQuery = selectTaskQuery + `
WHERE t.is_permanent = TRUE OR t.expires_at > ?
ORDER BY t.created_at DESC;
`

const listTasksByAssigneeQuery = selectTaskQuery + `
WHERE t.assigned_to_id = ?
ORDER BY t.created_at DESC;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID              string          `db:"id"`
	Title           string          `db:"title"`
	Description     sql.NullString  `db:"description"`
	SiteName        string          `db:"site_name"`
	Status          string          `db:"status"`
	AssignedToID    string          `db:"assigned_to_id"`
	AssignedToName  string          `db:"assigned_to_name"`
	CreatedByID     string          `db:"created_by_id"`
	Cost            sql.NullFloat64 `db:"cost"`
	CostDescription sql.NullString  `db:"cost_description"`
	IsPermanent     bool            `db:"is_permanent"`
	ExpiresAt       sql.NullTime    `db:"expires_at"`
	CreatedAt       time.Time       `db:"created_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) error {
	_, err := r.db.NamedExecContext(ctx, insertTaskQuery, map[string]any{
		"id":             task.ID,
		"title":          task.Title,
		"description":    task.Description,
		"site_name":      task.SiteName,
		"status":         string(task.Status),
		"assigned_to_id": task.AssignedToID,
		"created_by_id":  task.CreatedByID,
		"is_permanent":   task.IsPermanent,
		"expires_at":     task.ExpiresAt,
		"created_at":     task.CreatedAt,
	})
	return err
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskByIDQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) ListLive(ctx context.Context, now time.Time) ([]domain.Task, error) {
	return r.listTasks(ctx, listLiveTasksQuery, now)
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, userID string) ([]domain.Task, error) {
	return r.listTasks(ctx, listTasksByAssigneeQuery, userID)
}

func (r *TaskRepository) listTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func (r *TaskRepository) SetCompleted(ctx context.Context, taskID string, cost float64, costDescription *string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, cost = ?, cost_description = ? WHERE id = ?;`,
		string(domain.TaskStatusCompleted), cost, costDescription, taskID,
	)
	return err
}

func (r *TaskRepository) SetStatus(ctx context.Context, taskID string, status domain.TaskStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE tasks SET status = ? WHERE id = ?;`, string(status), taskID)
	return err
}

func (r *TaskRepository) SetExpiry(ctx context.Context, taskID string, isPermanent bool, expiresAt *time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET is_permanent = ?, expires_at = ? WHERE id = ?;`,
		isPermanent, expiresAt, taskID,
	)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, taskID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?;`, taskID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks;`)
	return err
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:             row.ID,
		Title:          row.Title,
		SiteName:       row.SiteName,
		Status:         domain.TaskStatus(row.Status),
		AssignedToID:   row.AssignedToID,
		AssignedToName: row.AssignedToName,
		CreatedByID:    row.CreatedByID,
		IsPermanent:    row.IsPermanent,
		CreatedAt:      row.CreatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.Cost.Valid {
		value := row.Cost.Float64
		task.Cost = &value
	}

	if row.CostDescription.Valid {
		value := row.CostDescription.String
		task.CostDescription = &value
	}

	if row.ExpiresAt.Valid {
		value := row.ExpiresAt.Time
		task.ExpiresAt = &value
	}

	return task
}
