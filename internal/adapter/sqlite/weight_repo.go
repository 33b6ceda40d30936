package sqlite

import (
	"context"

	"weighttracker/internal/apperror"
	"weighttracker/internal/domain"
)

// WeightRepo implements weight history persistence on DB.
type WeightRepo struct {
	db *DB
}

// NewWeightRepo wraps a DB as a WeightRepository.
func NewWeightRepo(db *DB) *WeightRepo {
	return &WeightRepo{db: db}
}

var _ domain.WeightRepository = (*WeightRepo)(nil)

// Insert appends a new weight entry and returns its id. The foreign key
// constraint rejects a dangling user id without creating a row.
func (r *WeightRepo) Insert(ctx context.Context, userID int64, weight float64, date string) (int64, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"INSERT INTO weights(user_id, weight, date) VALUES(?, ?, ?);",
		userID, weight, date,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, apperror.NewUnknownUser(userID)
		}
		return 0, apperror.NewStoreUnavailable(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, apperror.NewStoreUnavailable(err)
	}
	return id, nil
}

// ListByUser returns the user's entries in insertion id order, the canonical
// history order regardless of date values.
func (r *WeightRepo) ListByUser(ctx context.Context, userID int64) ([]domain.WeightEntry, error) {
	rows, err := r.db.sql.QueryContext(ctx,
		"SELECT id, user_id, weight, date FROM weights WHERE user_id = ? ORDER BY id ASC;", userID)
	if err != nil {
		return nil, apperror.NewStoreUnavailable(err)
	}
	defer rows.Close()

	out := []domain.WeightEntry{}
	for rows.Next() {
		var e domain.WeightEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Weight, &e.Date); err != nil {
			return nil, apperror.NewStoreUnavailable(err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewStoreUnavailable(err)
	}
	return out, nil
}

// Update replaces both fields of an entry, NotFound when absent.
func (r *WeightRepo) Update(ctx context.Context, entryID int64, weight float64, date string) error {
	res, err := r.db.sql.ExecContext(ctx,
		"UPDATE weights SET weight = ?, date = ? WHERE id = ?;", weight, date, entryID)
	if err != nil {
		return apperror.NewStoreUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.NewStoreUnavailable(err)
	}
	if n == 0 {
		return apperror.NewNotFound(entryID)
	}
	return nil
}

// Delete removes an entry, NotFound when absent so a second delete of the
// same id is an error by contract.
func (r *WeightRepo) Delete(ctx context.Context, entryID int64) error {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM weights WHERE id = ?;", entryID)
	if err != nil {
		return apperror.NewStoreUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperror.NewStoreUnavailable(err)
	}
	if n == 0 {
		return apperror.NewNotFound(entryID)
	}
	return nil
}

// DeleteAllForUser bulk-removes a user's entries and returns the count, 0
// included.
func (r *WeightRepo) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	res, err := r.db.sql.ExecContext(ctx, "DELETE FROM weights WHERE user_id = ?;", userID)
	if err != nil {
		return 0, apperror.NewStoreUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, apperror.NewStoreUnavailable(err)
	}
	return n, nil
}
