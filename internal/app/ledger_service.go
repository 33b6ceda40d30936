package app

import (
	"context"

	"weighttracker/internal/apperror"
	"weighttracker/internal/domain"
	"weighttracker/internal/notify"
)

// LedgerService owns the append-mostly history of weight observations.
type LedgerService struct {
	weights  domain.WeightRepository
	users    domain.UserRepository
	notifier *notify.Notifier
}

// NewLedgerService creates a LedgerService. The notifier may be nil, in
// which case recording never starts notification attempts.
func NewLedgerService(weights domain.WeightRepository, users domain.UserRepository, notifier *notify.Notifier) *LedgerService {
	return &LedgerService{weights: weights, users: users, notifier: notifier}
}

// Record validates and appends a new observation, then hands it to the goal
// notifier. The insert and the notification decision are composed here so
// that from the caller's perspective either both happen or neither. The
// returned attempt is nil when the goal was not hit; the caller is never
// blocked by a started attempt.
func (s *LedgerService) Record(ctx context.Context, userID int64, weight float64, date string) (*domain.WeightEntry, *notify.Attempt, error) {
	if weight <= 0 {
		return nil, nil, apperror.NewInvalidWeight(weight)
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, apperror.NewUnknownUser(userID)
	}

	id, err := s.weights.Insert(ctx, userID, weight, date)
	if err != nil {
		return nil, nil, err
	}
	entry := &domain.WeightEntry{ID: id, UserID: userID, Weight: weight, Date: date}

	var attempt *notify.Attempt
	if s.notifier != nil {
		attempt = s.notifier.Observe(ctx, userID, weight)
	}
	return entry, attempt, nil
}

// List returns the user's history in insertion order. A user with no
// history yields an empty slice, not an error.
func (s *LedgerService) List(ctx context.Context, userID int64) ([]domain.WeightEntry, error) {
	return s.weights.ListByUser(ctx, userID)
}

// Update is an administrative correction: it replaces both fields of an
// existing entry, leaving its id and history position untouched. NotFound
// when the entry does not exist.
func (s *LedgerService) Update(ctx context.Context, entryID int64, weight float64, date string) error {
	return s.weights.Update(ctx, entryID, weight, date)
}

// Delete removes a single entry. Deleting an absent (or already deleted) id
// is a NotFound error by contract, not silently ignored.
func (s *LedgerService) Delete(ctx context.Context, entryID int64) error {
	return s.weights.Delete(ctx, entryID)
}

// DeleteAllForUser bulk-removes a user's history and returns the count
// removed; zero is a valid result.
func (s *LedgerService) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	return s.weights.DeleteAllForUser(ctx, userID)
}
