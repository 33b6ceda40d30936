package memory

import (
	"context"
	"testing"

	"weighttracker/internal/apperror"
	"weighttracker/internal/domain"
)

func TestCreateDuplicateUsername(t *testing.T) {
	db := New()
	ctx := context.Background()

	if _, err := db.Create(ctx, "bob", "secret"); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := db.Create(ctx, "bob", "other")
	if !apperror.IsKind(err, apperror.DuplicateUsername) {
		t.Fatalf("expected DuplicateUsername, got %v", err)
	}
	// Different casing is a different username.
	if _, err := db.Create(ctx, "Bob", "secret"); err != nil {
		t.Fatalf("create with different casing: %v", err)
	}
}

func TestGetByCredentialsExactMatch(t *testing.T) {
	db := New()
	ctx := context.Background()

	u, err := db.Create(ctx, "bob", "secret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := db.GetByCredentials(ctx, "bob", "secret")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != u.ID {
		t.Fatalf("expected user %d, got %+v", u.ID, got)
	}

	for _, c := range [][2]string{{"bob", "Secret"}, {"BOB", "secret"}, {"bob", ""}} {
		got, err := db.GetByCredentials(ctx, c[0], c[1])
		if err != nil {
			t.Fatalf("get %v: %v", c, err)
		}
		if got != nil {
			t.Fatalf("expected no match for %v, got %+v", c, got)
		}
	}
}

func TestGetByIDAbsent(t *testing.T) {
	db := New()

	got, err := db.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent id, got %+v", got)
	}
}

func TestUpdateGoalWeightLastWriteWins(t *testing.T) {
	db := New()
	ctx := context.Background()

	u, err := db.Create(ctx, "bob", "secret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.GoalWeight != domain.GoalWeightUnset {
		t.Fatalf("new user goal = %v, want unset", u.GoalWeight)
	}

	if err := db.UpdateGoalWeight(ctx, u.ID, 150); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := db.UpdateGoalWeight(ctx, u.ID, 145.5); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := db.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.GoalWeight != 145.5 {
		t.Fatalf("goal = %v, want 145.5", got.GoalWeight)
	}

	if err := db.UpdateGoalWeight(ctx, 999, 150); !apperror.IsKind(err, apperror.UnknownUser) {
		t.Fatalf("expected UnknownUser, got %v", err)
	}
}

func TestWeightInsertionOrder(t *testing.T) {
	db := New()
	repo := db.NewWeightRepo()
	ctx := context.Background()

	u, err := db.Create(ctx, "bob", "secret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	other, err := db.Create(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, w := range []float64{70, 69.5, 71} {
		if _, err := repo.Insert(ctx, u.ID, w, "Jan 01, 2026"); err != nil {
			t.Fatalf("insert %v: %v", w, err)
		}
	}
	if _, err := repo.Insert(ctx, other.ID, 60, "Jan 01, 2026"); err != nil {
		t.Fatalf("insert for other user: %v", err)
	}

	entries, err := repo.ListByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	for i, want := range []float64{70, 69.5, 71} {
		if entries[i].Weight != want {
			t.Fatalf("entries[%d].Weight = %v, want %v", i, entries[i].Weight, want)
		}
	}
}

func TestWeightInsertUnknownUser(t *testing.T) {
	db := New()
	repo := db.NewWeightRepo()

	_, err := repo.Insert(context.Background(), 999, 70, "Jan 01, 2026")
	if !apperror.IsKind(err, apperror.UnknownUser) {
		t.Fatalf("expected UnknownUser, got %v", err)
	}
}

func TestWeightUpdateKeepsPosition(t *testing.T) {
	db := New()
	repo := db.NewWeightRepo()
	ctx := context.Background()

	u, err := db.Create(ctx, "bob", "secret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	first, err := repo.Insert(ctx, u.ID, 70, "Jan 01, 2026")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := repo.Insert(ctx, u.ID, 69.5, "Jan 02, 2026"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := repo.Update(ctx, first, 71.2, "Jan 03, 2026"); err != nil {
		t.Fatalf("update: %v", err)
	}

	entries, err := repo.ListByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if entries[0].ID != first || entries[0].Weight != 71.2 || entries[0].Date != "Jan 03, 2026" {
		t.Fatalf("entries[0] = %+v", entries[0])
	}

	if err := repo.Update(ctx, 999, 70, "Jan 01, 2026"); !apperror.IsKind(err, apperror.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestWeightDeleteAbsent(t *testing.T) {
	db := New()
	repo := db.NewWeightRepo()
	ctx := context.Background()

	u, err := db.Create(ctx, "bob", "secret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id, err := repo.Insert(ctx, u.ID, 70, "Jan 01, 2026")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, id); !apperror.IsKind(err, apperror.NotFound) {
		t.Fatalf("expected NotFound on second delete, got %v", err)
	}
}

func TestDeleteAllForUserScoped(t *testing.T) {
	db := New()
	repo := db.NewWeightRepo()
	ctx := context.Background()

	bob, err := db.Create(ctx, "bob", "secret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	alice, err := db.Create(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := repo.Insert(ctx, bob.ID, 70, "Jan 01, 2026"); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	if _, err := repo.Insert(ctx, alice.ID, 60, "Jan 01, 2026"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	removed, err := repo.DeleteAllForUser(ctx, bob.ID)
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}

	entries, err := repo.ListByUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("alice's entries = %d, want 1", len(entries))
	}
}
