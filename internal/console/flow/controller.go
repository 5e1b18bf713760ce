// Package flow drives one collection view of the console: it owns the
// local copy of the records and funnels every mutation through a single
// lock so concurrent commands cannot interleave their writes.
package flow

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// State describes where a controller is in its load cycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// ErrDeclined is returned by Delete when the confirmation callback
// answers no. Nothing has been sent to the server in that case.
var ErrDeclined = errors.New("delete not confirmed")

// Config wires a controller to its collection. ID and List are
// required; the mutation funcs may be nil for read-only views.
type Config[T any] struct {
	ID       func(T) string
	Validate func(T) error
	List     func(ctx context.Context) ([]T, error)
	Create   func(ctx context.Context, record T) (string, error)
	Update   func(ctx context.Context, id string, record T) error
	Delete   func(ctx context.Context, id string) error
}

type Controller[T any] struct {
	cfg Config[T]

	// mu serializes Load and every mutation; a second mutation issued
	// while one is in flight waits rather than failing.
	mu sync.Mutex

	stateMu sync.RWMutex
	state   State
	items   []T
	loaded  bool
}

func New[T any](cfg Config[T]) *Controller[T] {
	return &Controller[T]{cfg: cfg}
}

func (c *Controller[T]) State() State {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.state
}

// Items returns a copy of the current records.
func (c *Controller[T]) Items() []T {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Controller[T]) setState(s State) {
	c.stateMu.Lock()
	c.state = s
	c.stateMu.Unlock()
}

func (c *Controller[T]) setItems(items []T) {
	c.stateMu.Lock()
	c.items = items
	c.loaded = true
	c.stateMu.Unlock()
}

// Load fetches the collection. On failure the previous records, if
// any, are kept.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setState(StateLoading)
	items, err := c.cfg.List(ctx)
	if err != nil {
		c.stateMu.Lock()
		if c.loaded {
			c.state = StateReady
		} else {
			c.state = StateIdle
		}
		c.stateMu.Unlock()
		return err
	}
	c.setItems(items)
	c.setState(StateReady)
	return nil
}

// Create validates the record before anything leaves the process; a
// validation failure makes no remote call. On success the whole
// collection is reloaded rather than patched locally, so server-side
// defaults show up immediately.
func (c *Controller[T]) Create(ctx context.Context, record T) error {
	if c.cfg.Validate != nil {
		if err := c.cfg.Validate(record); err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.setState(StateSubmitting)
	defer c.setState(StateReady)

	if _, err := c.cfg.Create(ctx, record); err != nil {
		return err
	}
	items, err := c.cfg.List(ctx)
	if err != nil {
		return err
	}
	c.setItems(items)
	return nil
}

// Update applies the record locally first, then writes it out. If the
// write fails the collection is refetched so the local copy reconciles
// with whatever the server actually holds; the write error is returned
// either way.
func (c *Controller[T]) Update(ctx context.Context, record T) error {
	id := c.cfg.ID(record)
	return c.updateWith(ctx, id, record, func(ctx context.Context) error {
		return c.cfg.Update(ctx, id, record)
	})
}

// UpdateWith is Update with a caller-supplied write, for operations
// that have their own endpoint such as the open/closed toggle.
func (c *Controller[T]) UpdateWith(ctx context.Context, record T, write func(ctx context.Context) error) error {
	return c.updateWith(ctx, c.cfg.ID(record), record, write)
}

func (c *Controller[T]) updateWith(ctx context.Context, id string, record T, write func(ctx context.Context) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setState(StateSubmitting)
	defer c.setState(StateReady)

	c.stateMu.Lock()
	snapshot := make([]T, len(c.items))
	copy(snapshot, c.items)
	for i := range c.items {
		if c.cfg.ID(c.items[i]) == id {
			c.items[i] = record
			break
		}
	}
	c.stateMu.Unlock()

	if err := write(ctx); err != nil {
		// Reconcile against the server; if that fails too, roll the
		// optimistic merge back so the local copy never keeps an
		// unconfirmed edit.
		items, lerr := c.cfg.List(ctx)
		if lerr != nil {
			slog.Warn("refetch after failed update", "id", id, "err", lerr)
			items = snapshot
		}
		c.setItems(items)
		return err
	}
	return nil
}

// Delete asks confirm before touching the server and removes the
// record locally only after the remote delete succeeded.
func (c *Controller[T]) Delete(ctx context.Context, id string, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return ErrDeclined
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.setState(StateSubmitting)
	defer c.setState(StateReady)

	if err := c.cfg.Delete(ctx, id); err != nil {
		return err
	}

	c.stateMu.Lock()
	kept := c.items[:0]
	for _, it := range c.items {
		if c.cfg.ID(it) != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.stateMu.Unlock()
	return nil
}
