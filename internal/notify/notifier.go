// Package notify decides when a recorded weight reaches the user's goal and
// drives delivery of the congratulation message through a permission gate.
package notify

import (
	"context"
	"fmt"
	"log"
	"sync"

	"weighttracker/internal/apperror"
	"weighttracker/internal/domain"

	"github.com/google/uuid"
)

// State is the position of a notification attempt in its lifecycle.
type State int

const (
	// StateIdle: no pending attempt.
	StateIdle State = iota
	// StateEvaluate: a fresh observation is being compared to the goal.
	StateEvaluate
	// StatePermissionCheck: the permission gate is being queried.
	StatePermissionCheck
	// StateAwaitingGrant: a grant request was issued; suspended until the
	// gate resolves it. May stay here indefinitely.
	StateAwaitingGrant
	// StateDispatch: the message was handed to the delivery channel.
	StateDispatch
	// StateSent: delivery acknowledged. Terminal.
	StateSent
	// StateBlocked: denied grant or failed delivery. Terminal for the
	// attempt; only an explicit Retry re-drives it.
	StateBlocked
)

var stateNames = map[State]string{
	StateIdle:            "idle",
	StateEvaluate:        "evaluate",
	StatePermissionCheck: "permission-check",
	StateAwaitingGrant:   "awaiting-grant",
	StateDispatch:        "dispatch",
	StateSent:            "sent",
	StateBlocked:         "blocked",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// GoalSource yields the authoritative goal weight for a user. The notifier
// re-reads it on every observation instead of caching a copy.
type GoalSource interface {
	GetGoalWeight(ctx context.Context, userID int64) (float64, error)
}

// Attempt is a single notification attempt. Each goal-matching observation
// starts an independent attempt; one reaching Sent does not suppress the
// next.
type Attempt struct {
	ID     uuid.UUID
	UserID int64
	Goal   float64

	mu    sync.Mutex
	state State
	err   error
	done  chan struct{}
}

// State returns the attempt's current state.
func (a *Attempt) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Err returns the terminal error of a Blocked attempt, nil otherwise.
func (a *Attempt) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// Done returns a channel closed when the attempt reaches Sent or Blocked.
// Retry installs a fresh channel, so call Done again after a Retry.
func (a *Attempt) Done() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.done
}

func (a *Attempt) setState(s State) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}

func (a *Attempt) finish(s State, err error) {
	a.mu.Lock()
	a.state = s
	a.err = err
	close(a.done)
	a.mu.Unlock()
}

// Notifier watches recorded weights and runs the dispatch state machine.
// The delivery destination is injected configuration.
type Notifier struct {
	goals       GoalSource
	gate        domain.PermissionGate
	delivery    domain.DeliveryChannel
	destination string
}

// New creates a Notifier over the given collaborators.
func New(goals GoalSource, gate domain.PermissionGate, delivery domain.DeliveryChannel, destination string) *Notifier {
	return &Notifier{goals: goals, gate: gate, delivery: delivery, destination: destination}
}

// Message renders the fixed congratulation template for a goal value.
func Message(goal float64) string {
	return fmt.Sprintf("🎉 Congrats! You've reached your goal weight of %g lbs!", goal)
}

// Observe evaluates a freshly recorded weight against the user's goal.
// It returns nil when the goal was not hit (back to Idle, no side effect).
// Otherwise it returns a live attempt already past Evaluate and drives it on
// its own goroutine: permission resolution and delivery never block the
// caller. The comparison is exact equality, matching the stock behavior.
func (n *Notifier) Observe(ctx context.Context, userID int64, weight float64) *Attempt {
	goal, err := n.goals.GetGoalWeight(ctx, userID)
	if err != nil {
		log.Printf("notify: goal lookup for user %d: %v", userID, err)
		return nil
	}
	if weight != goal {
		return nil
	}

	a := &Attempt{
		ID:     uuid.New(),
		UserID: userID,
		Goal:   goal,
		state:  StatePermissionCheck,
		done:   make(chan struct{}),
	}
	// Once started the attempt runs to Sent or Blocked regardless of what
	// happens to the caller's request.
	go n.run(context.WithoutCancel(ctx), a)
	return a
}

// Retry re-drives a Blocked attempt from PermissionCheck. Attempts in any
// other state are refused.
func (n *Notifier) Retry(ctx context.Context, a *Attempt) error {
	a.mu.Lock()
	if a.state != StateBlocked {
		a.mu.Unlock()
		return apperror.New(apperror.Validation, "attempt is not blocked", nil)
	}
	a.state = StatePermissionCheck
	a.err = nil
	a.done = make(chan struct{})
	a.mu.Unlock()

	go n.run(context.WithoutCancel(ctx), a)
	return nil
}

func (n *Notifier) run(ctx context.Context, a *Attempt) {
	if n.gate.Check(ctx) == domain.Granted {
		n.dispatch(ctx, a)
		return
	}

	a.setState(StateAwaitingGrant)
	decision, ok := <-n.gate.Request(ctx)
	if !ok || decision != domain.Granted {
		log.Printf("notify: attempt %s blocked, permission denied", a.ID)
		a.finish(StateBlocked, apperror.NewPermissionDenied())
		return
	}
	n.dispatch(ctx, a)
}

func (n *Notifier) dispatch(ctx context.Context, a *Attempt) {
	a.setState(StateDispatch)
	if err := <-n.delivery.Send(ctx, n.destination, Message(a.Goal)); err != nil {
		log.Printf("notify: attempt %s blocked, delivery failed: %v", a.ID, err)
		a.finish(StateBlocked, apperror.NewDeliveryFailed(err))
		return
	}
	a.finish(StateSent, nil)
}
