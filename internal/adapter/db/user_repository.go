package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/internal/core/ports"
)

// MySQL error numbers this repository cares about.
const (
	mysqlErrDuplicateEntry   = 1062
	mysqlErrRowIsReferenced2 = 1451
)

const insertUserQuery = `
INSERT INTO users (id, name, email, password, role, created_at)
VALUES (:id, :name, :email, :password, :role, :created_at);
`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Insert(ctx context.Context, user domain.User) error {
	_, err := r.db.NamedExecContext(ctx, insertUserQuery, map[string]any{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"password":   user.Password,
		"role":       string(user.Role),
		"created_at": user.CreatedAt,
	})
	if isMySQLError(err, mysqlErrDuplicateEntry) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (domain.User, error) {
	return r.getUser(ctx, `SELECT * FROM users WHERE id = ?;`, userID)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getUser(ctx, `SELECT * FROM users WHERE email = ?;`, email)
}

func (r *UserRepository) getUser(ctx context.Context, query string, arg any) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users;`); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return r.listUsers(ctx, `SELECT * FROM users WHERE role = ? ORDER BY created_at DESC;`, string(role))
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return r.listUsers(ctx, `SELECT * FROM users ORDER BY created_at DESC;`)
}

func (r *UserRepository) listUsers(ctx context.Context, query string, args ...any) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}
	return users, nil
}

// Delete does not cascade: a user still referenced by tasks or notifications
// comes back as domain.ErrUserHasRecords.
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?;`, userID)
	if isMySQLError(err, mysqlErrRowIsReferenced2) {
		return domain.ErrUserHasRecords
	}
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteByRole(ctx context.Context, role domain.Role) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE role = ?;`, string(role))
	return err
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Password:  row.Password,
		Role:      domain.Role(row.Role),
		CreatedAt: row.CreatedAt,
	}
}

func isMySQLError(err error, number uint16) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == number
}
