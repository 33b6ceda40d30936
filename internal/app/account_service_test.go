package app_test

import (
	"context"
	"testing"

	"weighttracker/internal/apperror"
	"weighttracker/internal/app"
	"weighttracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	createFn           func(ctx context.Context, username, password string) (*domain.User, error)
	getByUsernameFn    func(ctx context.Context, username string) (*domain.User, error)
	getByCredentialsFn func(ctx context.Context, username, password string) (*domain.User, error)
	getByIDFn          func(ctx context.Context, id int64) (*domain.User, error)
	updateGoalFn       func(ctx context.Context, id int64, goal float64) error
	deleteFn           func(ctx context.Context, id int64) error
}

func (m *mockUserRepo) Create(ctx context.Context, username, password string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, username, password)
	}
	return &domain.User{ID: 1, Username: username, Password: password}, nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByCredentials(ctx context.Context, username, password string) (*domain.User, error) {
	if m.getByCredentialsFn != nil {
		return m.getByCredentialsFn(ctx, username, password)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateGoalWeight(ctx context.Context, id int64, goal float64) error {
	if m.updateGoalFn != nil {
		return m.updateGoalFn(ctx, id, goal)
	}
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockWeightRepo struct {
	insertFn    func(ctx context.Context, userID int64, weight float64, date string) (int64, error)
	listFn      func(ctx context.Context, userID int64) ([]domain.WeightEntry, error)
	updateFn    func(ctx context.Context, entryID int64, weight float64, date string) error
	deleteFn    func(ctx context.Context, entryID int64) error
	deleteAllFn func(ctx context.Context, userID int64) (int64, error)
}

func (m *mockWeightRepo) Insert(ctx context.Context, userID int64, weight float64, date string) (int64, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, userID, weight, date)
	}
	return 1, nil
}

func (m *mockWeightRepo) ListByUser(ctx context.Context, userID int64) ([]domain.WeightEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockWeightRepo) Update(ctx context.Context, entryID int64, weight float64, date string) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, entryID, weight, date)
	}
	return nil
}

func (m *mockWeightRepo) Delete(ctx context.Context, entryID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, entryID)
	}
	return nil
}

func (m *mockWeightRepo) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	if m.deleteAllFn != nil {
		return m.deleteAllFn(ctx, userID)
	}
	return 0, nil
}

func TestRegisterReturnsID(t *testing.T) {
	users := &mockUserRepo{
		createFn: func(_ context.Context, username, password string) (*domain.User, error) {
			return &domain.User{ID: 42, Username: username, Password: password}, nil
		},
	}
	svc := app.NewAccountService(users, &mockWeightRepo{})

	id, err := svc.Register(context.Background(), "bob", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestRegisterPropagatesDuplicate(t *testing.T) {
	users := &mockUserRepo{
		createFn: func(_ context.Context, username, _ string) (*domain.User, error) {
			return nil, apperror.NewDuplicateUsername(username)
		},
	}
	svc := app.NewAccountService(users, &mockWeightRepo{})

	_, err := svc.Register(context.Background(), "bob", "secret")
	assert.True(t, apperror.IsKind(err, apperror.DuplicateUsername))
}

func TestAuthenticateMatch(t *testing.T) {
	users := &mockUserRepo{
		getByCredentialsFn: func(_ context.Context, username, password string) (*domain.User, error) {
			if username == "bob" && password == "secret" {
				return &domain.User{ID: 7, Username: "bob"}, nil
			}
			return nil, nil
		},
	}
	svc := app.NewAccountService(users, &mockWeightRepo{})

	id, err := svc.Authenticate(context.Background(), "bob", "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestAuthenticateNoMatch(t *testing.T) {
	svc := app.NewAccountService(&mockUserRepo{}, &mockWeightRepo{})

	// Wrong password and unknown user surface the same error.
	_, err := svc.Authenticate(context.Background(), "bob", "wrong")
	assert.True(t, apperror.IsKind(err, apperror.InvalidCredentials))

	_, err = svc.Authenticate(context.Background(), "nobody", "secret")
	assert.True(t, apperror.IsKind(err, apperror.InvalidCredentials))
}

func TestGetGoalWeightUnknownUser(t *testing.T) {
	svc := app.NewAccountService(&mockUserRepo{}, &mockWeightRepo{})

	_, err := svc.GetGoalWeight(context.Background(), 999)
	assert.True(t, apperror.IsKind(err, apperror.UnknownUser))
}

func TestGetGoalWeightUnsetSentinel(t *testing.T) {
	users := &mockUserRepo{
		getByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Username: "bob"}, nil
		},
	}
	svc := app.NewAccountService(users, &mockWeightRepo{})

	goal, err := svc.GetGoalWeight(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalWeightUnset, goal)
}

func TestDeleteAccountCascades(t *testing.T) {
	var order []string
	users := &mockUserRepo{
		deleteFn: func(_ context.Context, _ int64) error {
			order = append(order, "user")
			return nil
		},
	}
	weights := &mockWeightRepo{
		deleteAllFn: func(_ context.Context, _ int64) (int64, error) {
			order = append(order, "weights")
			return 3, nil
		},
	}
	svc := app.NewAccountService(users, weights)

	removed, err := svc.DeleteAccount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.Equal(t, []string{"weights", "user"}, order)
}
