package player

import (
	"context"
	"errors"

	"video-bingo/internal/eventconfig"
)

// Phase is what the player screen shows.
type Phase string

const (
	PhaseLoading  Phase = "loading"
	PhaseReady    Phase = "ready"
	PhaseNotFound Phase = "not_found"
	PhaseError    Phase = "error"
)

type EventSource interface {
	Resolved(ctx context.Context, eventCode string) (*eventconfig.Resolved, error)
}

// Load moves the screen out of PhaseLoading.
func Load(ctx context.Context, src EventSource, eventCode string) (Phase, *eventconfig.Resolved, error) {
	ev, err := src.Resolved(ctx, eventCode)
	switch {
	case errors.Is(err, ErrEventNotFound):
		return PhaseNotFound, nil, err
	case err != nil:
		return PhaseError, nil, err
	}
	return PhaseReady, ev, nil
}
