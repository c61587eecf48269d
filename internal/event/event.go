package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Change is the stable notification consumed by downstream collaborators
// (messaging, exports, analytics). Only the entity id and its new state are
// guaranteed; consumers fetch the rest themselves.
type Change struct {
	Entity     string    `json:"entity"`
	ID         uuid.UUID `json:"id"`
	State      string    `json:"state"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Emitter publishes entity change notifications. Emission is best-effort:
// implementations must not fail the calling operation.
type Emitter interface {
	Emit(ctx context.Context, c Change)
}

// Noop discards all notifications.
type Noop struct{}

func (Noop) Emit(context.Context, Change) {}
