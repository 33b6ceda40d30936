package domain

import "context"

// WeightEntry represents a single weight observation. Date is the
// caller-supplied calendar date ("Jan 02, 2006" in the stock client); the
// core treats it as opaque text and never orders by it.
type WeightEntry struct {
	ID     int64   `json:"id"`
	UserID int64   `json:"userId"`
	Weight float64 `json:"weight"`
	Date   string  `json:"date"`
}

// WeightRepository is the port for weight history persistence. ListByUser
// returns entries in insertion id order; that order is the canonical history
// order and every backend must preserve it.
type WeightRepository interface {
	Insert(ctx context.Context, userID int64, weight float64, date string) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]WeightEntry, error)
	Update(ctx context.Context, entryID int64, weight float64, date string) error
	Delete(ctx context.Context, entryID int64) error
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)
}
