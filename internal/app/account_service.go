// Package app holds the application services and business logic.
package app

import (
	"context"

	"weighttracker/internal/apperror"
	"weighttracker/internal/domain"
)

// AccountService owns user identity, credentials, and the per-user goal
// weight. Input length policy (4-20 characters) is the caller layer's job;
// the store persists out-of-range strings if asked directly.
type AccountService struct {
	users   domain.UserRepository
	weights domain.WeightRepository
}

// NewAccountService creates an AccountService over the given repositories.
// The weight repository is only used for the cascade on account deletion.
func NewAccountService(users domain.UserRepository, weights domain.WeightRepository) *AccountService {
	return &AccountService{users: users, weights: weights}
}

// Register creates an account with the goal weight unset and returns its id.
// A case-sensitive exact username match fails with DuplicateUsername.
func (s *AccountService) Register(ctx context.Context, username, password string) (int64, error) {
	user, err := s.users.Create(ctx, username, password)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Authenticate returns the user id when both fields match a stored row
// exactly. Unknown user and wrong password collapse into the same
// InvalidCredentials error so responses cannot be used to enumerate
// accounts.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (int64, error) {
	user, err := s.users.GetByCredentials(ctx, username, password)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, apperror.NewInvalidCredentials()
	}
	return user.ID, nil
}

// SetGoalWeight overwrites the user's goal unconditionally, last write wins.
// UnknownUser when the id does not exist.
func (s *AccountService) SetGoalWeight(ctx context.Context, userID int64, goal float64) error {
	return s.users.UpdateGoalWeight(ctx, userID, goal)
}

// GetGoalWeight returns the user's goal, or the unset sentinel if it was
// never set. It never fails for a known user.
func (s *AccountService) GetGoalWeight(ctx context.Context, userID int64) (float64, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.GoalWeightUnset, err
	}
	if user == nil {
		return domain.GoalWeightUnset, apperror.NewUnknownUser(userID)
	}
	return user.GoalWeight, nil
}

// DeleteAccount is the administrative removal of a user: the whole ledger is
// cascade-deleted first, then the user row. Returns the number of ledger
// entries removed.
func (s *AccountService) DeleteAccount(ctx context.Context, userID int64) (int64, error) {
	removed, err := s.weights.DeleteAllForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return removed, err
	}
	return removed, nil
}
