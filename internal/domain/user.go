// Package domain contains the core business entities and interfaces.
package domain

import "context"

// GoalWeightUnset is the sentinel meaning the user never set a goal weight.
// It matches the schema default of 0; recorded weights are always > 0, so an
// unset goal can never compare equal to an observation.
const GoalWeightUnset float64 = 0

// User represents an account holder. The password is persisted exactly as
// given (a known weakness kept for behavioral parity; see DESIGN.md).
type User struct {
	ID         int64   `json:"id"`
	Username   string  `json:"username"`
	Password   string  `json:"-"`
	GoalWeight float64 `json:"goalWeight"`
}

// UserRepository defines the port for user persistence operations.
// Create must perform its existence check and insert as one atomic unit.
// Lookup methods return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, username, password string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByCredentials(ctx context.Context, username, password string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	UpdateGoalWeight(ctx context.Context, id int64, goal float64) error
	Delete(ctx context.Context, id int64) error
}
