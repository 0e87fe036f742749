package eventconfig

import (
	"context"
	"errors"
	"fmt"

	"video-bingo/internal/store"
)

// Legacy resolves an event's config_key against the curated table, for events
// created before games were stored per event.
type Legacy struct {
	repo  Repository
	local *Local
}

func NewLegacy(repo Repository, local *Local) *Legacy {
	return &Legacy{repo: repo, local: local}
}

func (l *Legacy) Resolve(ctx context.Context, id string) (*Resolved, bool, error) {
	ev, err := l.repo.GetEventByCode(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load event %s: %w", id, err)
	}
	if ev.ConfigKey == "" {
		return nil, false, nil
	}
	target, ok := l.local.events[ev.ConfigKey]
	if !ok {
		return nil, false, nil
	}
	out := target.resolved(SourceLegacy)
	out.ID = ev.EventCode
	if ev.Name != "" {
		out.Name = ev.Name
	}
	out.Status = ev.Status
	return out, true, nil
}
