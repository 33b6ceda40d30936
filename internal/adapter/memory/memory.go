// Package memory implements the domain repositories in memory for
// development and testing.
package memory

import (
	"context"
	"sync"

	"weighttracker/internal/apperror"
	"weighttracker/internal/domain"
)

// DB implements in-memory storage behind the same ports as the sqlite
// adapter. Weight entries are held in insertion order.
type DB struct {
	mu      sync.Mutex
	users   []*domain.User
	weights []domain.WeightEntry

	userIDCounter   int64
	weightIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.WeightRepository = (*WeightRepo)(nil)

// --- UserRepository ---

// Create creates a new user; the mutex makes the check-then-insert atomic.
func (db *DB) Create(ctx context.Context, username, password string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, apperror.NewDuplicateUsername(username)
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:         db.userIDCounter,
		Username:   username,
		Password:   password,
		GoalWeight: domain.GoalWeightUnset,
	}
	db.users = append(db.users, u)

	cp := *u
	return &cp, nil
}

// GetByUsername retrieves a user by exact username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByCredentials retrieves the user matching both fields exactly.
func (db *DB) GetByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username && u.Password == password {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by id.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// UpdateGoalWeight overwrites the goal, last write wins.
func (db *DB) UpdateGoalWeight(ctx context.Context, id int64, goal float64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			u.GoalWeight = goal
			return nil
		}
	}
	return apperror.NewUnknownUser(id)
}

// Delete removes a user row. Callers cascade the ledger first.
func (db *DB) Delete(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, u := range db.users {
		if u.ID == id {
			db.users = append(db.users[:i], db.users[i+1:]...)
			return nil
		}
	}
	return apperror.NewUnknownUser(id)
}

// --- WeightRepository ---

// WeightRepo implements weight history persistence on DB.
type WeightRepo struct {
	db *DB
}

// NewWeightRepo wraps the DB as a WeightRepository.
func (db *DB) NewWeightRepo() *WeightRepo {
	return &WeightRepo{db: db}
}

// Insert appends a weight entry for a live user.
func (r *WeightRepo) Insert(ctx context.Context, userID int64, weight float64, date string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	found := false
	for _, u := range r.db.users {
		if u.ID == userID {
			found = true
			break
		}
	}
	if !found {
		return 0, apperror.NewUnknownUser(userID)
	}

	r.db.weightIDCounter++
	r.db.weights = append(r.db.weights, domain.WeightEntry{
		ID:     r.db.weightIDCounter,
		UserID: userID,
		Weight: weight,
		Date:   date,
	})
	return r.db.weightIDCounter, nil
}

// ListByUser returns the user's entries in insertion order.
func (r *WeightRepo) ListByUser(ctx context.Context, userID int64) ([]domain.WeightEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := []domain.WeightEntry{}
	for _, e := range r.db.weights {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Update replaces both fields of an entry in place, preserving its position.
func (r *WeightRepo) Update(ctx context.Context, entryID int64, weight float64, date string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.weights {
		if r.db.weights[i].ID == entryID {
			r.db.weights[i].Weight = weight
			r.db.weights[i].Date = date
			return nil
		}
	}
	return apperror.NewNotFound(entryID)
}

// Delete removes an entry; a second delete of the same id errors.
func (r *WeightRepo) Delete(ctx context.Context, entryID int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i := range r.db.weights {
		if r.db.weights[i].ID == entryID {
			r.db.weights = append(r.db.weights[:i], r.db.weights[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound(entryID)
}

// DeleteAllForUser removes every entry of the user and reports the count.
func (r *WeightRepo) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	kept := r.db.weights[:0]
	var removed int64
	for _, e := range r.db.weights {
		if e.UserID == userID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.db.weights = kept
	return removed, nil
}
