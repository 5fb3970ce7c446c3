// Package form holds the reservation form state machine: the draft being edited, the
// locally cached reservation list, the inline error message, and the transitions that
// move between them.
package form

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"labreserve/models"

	"go.uber.org/zap"
)

// ConflictMessage is shown when the selected equipment is already booked.
const ConflictMessage = "The selected equipment is already reserved for the specified time period."

// Draft field names accepted by UpdateField.
const (
	FieldName           = "name"
	FieldDate           = "date"
	FieldStartTime      = "startTime"
	FieldEndTime        = "endTime"
	FieldOtherEquipment = "otherEquipment"
)

var (
	ErrIncomplete     = errors.New("form: required fields missing")
	ErrConflict       = errors.New("form: equipment already reserved")
	ErrSubmitInFlight = errors.New("form: submission already in flight")
	ErrUnknownField   = errors.New("form: unknown field")
	ErrClosed         = errors.New("form: controller closed")
)

// Store is the remote list/append collaborator.
type Store interface {
	List(ctx context.Context) ([]models.Reservation, error)
	Append(ctx context.Context, r models.Reservation) (models.Reservation, error)
}

// State is a point-in-time copy of everything a renderer needs.
type State struct {
	Draft        models.Draft         `json:"draft"`
	Reservations []models.Reservation `json:"reservations"`
	Error        string               `json:"error,omitempty"`
	Submitting   bool                 `json:"submitting"`
}

// Controller owns the form state. Network calls run outside the lock; results that
// arrive after Close are dropped.
type Controller struct {
	store  Store
	logger *zap.Logger

	life   context.Context
	cancel context.CancelFunc

	mu           sync.Mutex
	draft        models.Draft
	reservations []models.Reservation
	errMsg       string
	submitting   bool

	// Records saved while a Load was in flight, tagged with appendSeq.
	appendSeq uint64
	appended  []appendedRecord
	loading   int
}

type appendedRecord struct {
	seq uint64
	res models.Reservation
}

// NewController binds a controller to the lifetime of parent.
func NewController(parent context.Context, store Store, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	life, cancel := context.WithCancel(parent)
	return &Controller{
		store:  store,
		logger: logger,
		life:   life,
		cancel: cancel,
	}
}

// Close ends the controller lifetime and cancels pending calls.
func (c *Controller) Close() {
	c.cancel()
}

// scoped derives a request context that also ends with the controller.
func (c *Controller) scoped(ctx context.Context) (context.Context, context.CancelFunc) {
	reqCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.life, cancel)
	return reqCtx, func() {
		stop()
		cancel()
	}
}

// UpdateField merges one field edit into the draft without validating it.
func (c *Controller) UpdateField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case FieldName:
		c.draft.Name = value
	case FieldDate:
		c.draft.Date = value
	case FieldStartTime:
		c.draft.StartTime = value
	case FieldEndTime:
		c.draft.EndTime = value
	case FieldOtherEquipment:
		c.draft.OtherEquipment = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// UpdateEquipment replaces the selection wholesale, keeping the given order.
func (c *Controller) UpdateEquipment(values []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft.Equipment = slices.Clone(values)
}

// Load fetches the stored reservations and replaces the local cache. Records saved by a
// Submit that finished while the fetch was in flight are kept at the end if the fetched
// list does not already hold them. On failure the cache is left as it was.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.life.Err() != nil {
		c.mu.Unlock()
		return ErrClosed
	}
	since := c.appendSeq
	c.loading++
	c.mu.Unlock()

	reqCtx, done := c.scoped(ctx)
	defer done()

	list, err := c.store.List(reqCtx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading--
	defer func() {
		if c.loading == 0 {
			c.appended = nil
		}
	}()
	if c.life.Err() != nil {
		return ErrClosed
	}
	if err != nil {
		c.logger.Error("Failed to fetch reservations", zap.Error(err))
		return fmt.Errorf("load reservations: %w", err)
	}

	merged := slices.Clone(list)
	for _, a := range c.appended {
		if a.seq > since && !containsRecord(merged, a.res) {
			merged = append(merged, a.res)
		}
	}
	c.reservations = merged
	c.logger.Debug("Reservations loaded", zap.Int("count", len(list)), zap.Int("kept", len(merged)-len(list)))
	return nil
}

// containsRecord matches on ID when the store assigned one.
func containsRecord(list []models.Reservation, r models.Reservation) bool {
	return slices.ContainsFunc(list, func(x models.Reservation) bool {
		if r.ID != "" {
			return x.ID == r.ID
		}
		return x == r
	})
}

// Submit validates the draft, checks it against the cached reservations, and persists
// it. A missing field returns ErrIncomplete and leaves all state alone. A conflict sets
// the error message and returns ErrConflict. Remote failures leave draft, message, and
// list unchanged.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.life.Err() != nil {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	draft := c.draft.Clone()
	if !draft.Complete() {
		c.mu.Unlock()
		return ErrIncomplete
	}
	if existing, found := FindConflict(draft, c.reservations); found {
		c.errMsg = ConflictMessage
		c.mu.Unlock()
		c.logger.Info("Reservation conflict",
			zap.String("date", draft.Date),
			zap.String("existing", existing.Equipment),
			zap.String("existingStart", existing.StartTime),
			zap.String("existingEnd", existing.EndTime),
		)
		return ErrConflict
	}
	c.submitting = true
	c.mu.Unlock()

	reqCtx, done := c.scoped(ctx)
	defer done()
	saved, err := c.store.Append(reqCtx, draft.Reservation())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if c.life.Err() != nil {
		return ErrClosed
	}
	if err != nil {
		c.logger.Error("Failed to save reservation", zap.Error(err))
		return fmt.Errorf("submit reservation: %w", err)
	}

	c.reservations = append(c.reservations, saved)
	c.appendSeq++
	if c.loading > 0 {
		c.appended = append(c.appended, appendedRecord{seq: c.appendSeq, res: saved})
	}
	c.draft = models.Draft{}
	c.errMsg = ""
	return nil
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Draft:        c.draft.Clone(),
		Reservations: slices.Clone(c.reservations),
		Error:        c.errMsg,
		Submitting:   c.submitting,
	}
}
