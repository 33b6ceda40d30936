package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"weighttracker/internal/apperror"
	"weighttracker/internal/domain"
)

var _ domain.UserRepository = (*DB)(nil)

// Create inserts a new user with the goal weight unset. The existence check
// and the insert run inside one transaction so the check-then-act sequence
// is atomic; the UNIQUE constraint is the backstop for a writer racing in on
// another connection.
func (d *DB) Create(ctx context.Context, username, password string) (*domain.User, error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperror.NewStoreUnavailable(err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM users WHERE username = ?", username,
	).Scan(&count)
	if err != nil {
		return nil, apperror.NewStoreUnavailable(err)
	}
	if count > 0 {
		return nil, apperror.NewDuplicateUsername(username)
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO users(username, password, goal_weight) VALUES(?, ?, ?);",
		username, password, domain.GoalWeightUnset,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.NewDuplicateUsername(username)
		}
		return nil, apperror.NewStoreUnavailable(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, apperror.NewStoreUnavailable(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, apperror.NewStoreUnavailable(err)
	}

	return &domain.User{ID: id, Username: username, Password: password, GoalWeight: domain.GoalWeightUnset}, nil
}

// GetByUsername retrieves a user by exact username, nil when absent.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return d.scanUser(d.sql.QueryRowContext(ctx,
		"SELECT id, username, password, goal_weight FROM users WHERE username = ?;", username))
}

// GetByCredentials retrieves the user matching both fields exactly, nil when
// no row matches. The store never reveals which field was wrong.
func (d *DB) GetByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	return d.scanUser(d.sql.QueryRowContext(ctx,
		"SELECT id, username, password, goal_weight FROM users WHERE username = ? AND password = ?;",
		username, password))
}

// GetByID retrieves a user by id, nil when absent.
func (d *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return d.scanUser(d.sql.QueryRowContext(ctx,
		"SELECT id, username, password, goal_weight FROM users WHERE id = ?;", id))
}

// UpdateGoalWeight overwrites the goal unconditionally.
func (d *DB) UpdateGoalWeight(ctx context.Context, id int64, goal float64) error {
	res, err := d.sql.ExecContext(ctx,
		"UPDATE users SET goal_weight = ? WHERE id = ?;", goal, id)
	if err != nil {
		return apperror.NewStoreUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.NewStoreUnavailable(err)
	}
	if n == 0 {
		return apperror.NewUnknownUser(id)
	}
	return nil
}

// Delete removes the user row. Callers cascade the ledger first.
func (d *DB) Delete(ctx context.Context, id int64) error {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM users WHERE id = ?;", id)
	if err != nil {
		return apperror.NewStoreUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.NewStoreUnavailable(err)
	}
	if n == 0 {
		return apperror.NewUnknownUser(id)
	}
	return nil
}

func (d *DB) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.GoalWeight)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.NewStoreUnavailable(err)
	}
	return &u, nil
}
