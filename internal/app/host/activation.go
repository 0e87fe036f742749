package host

import (
	"context"
	"errors"
	"strings"

	"video-bingo/internal/eventconfig"
	"video-bingo/internal/store"

	"github.com/rs/zerolog/log"
)

// CreateOrActivate upserts the venue's event for a date. With MakeActive the
// date must be today in the venue's zone and every other active event of the
// venue is completed.
func (s *Service) CreateOrActivate(ctx context.Context, in CreateEventInput) (*EventRow, error) {
	venueSlug := strings.TrimSpace(in.VenueSlug)
	eventDate := strings.TrimSpace(in.EventDate)
	if venueSlug == "" {
		return nil, invalidf("Missing venueSlug.")
	}
	date, ok := ParseEventDate(eventDate)
	if !ok {
		return nil, invalidf("eventDate must be YYYY-MM-DD.")
	}

	configKey := strings.TrimSpace(in.ConfigKey)
	if configKey != "" && (s.configKeys == nil || !s.configKeys.Has(configKey)) {
		return nil, invalidf("Unknown config_key: %s", configKey)
	}

	var games []store.EventGame
	if in.Games != nil {
		var err error
		if games, err = s.normalizeGames(in.Games); err != nil {
			return nil, err
		}
		if err := s.assertPatternsExist(ctx, games); err != nil {
			return nil, err
		}
	}

	v, err := s.venue(ctx, venueSlug)
	if err != nil {
		return nil, err
	}
	loc := s.location(v)
	today := Today(s.now(), loc)
	if in.MakeActive && eventDate != today {
		return nil, invalidf("Cannot activate an event for %s. Only today's event (%s) can be activated. Create it as scheduled and activate it on the day of.", eventDate, today)
	}

	status := store.EventScheduled
	if in.MakeActive {
		status = store.EventActive
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = eventconfig.DefaultEventName(v, eventDate)
	}

	ev, err := s.repo.UpsertEvent(ctx, store.UpsertEventParams{
		VenueID:   v.ID,
		EventCode: EventCode(v.Slug, eventDate),
		Name:      name,
		StartAt:   LocalStartAt(date, s.startHour, loc),
		Status:    status,
		ConfigKey: configKey,
		Games:     games,
	})
	if err != nil {
		return nil, mapStoreWriteErr("create/update event", err)
	}
	log.Info().
		Str("venue", v.Slug).
		Str("event_code", ev.EventCode).
		Str("status", ev.Status).
		Bool("games_written", games != nil).
		Msg("event saved")
	return toEventRow(ev), nil
}

// ActivateExisting makes a stored event of the venue active. The date in the
// event code must be today in the venue's zone.
func (s *Service) ActivateExisting(ctx context.Context, venueSlug, eventCode string) (*EventRow, error) {
	if strings.TrimSpace(venueSlug) == "" {
		return nil, invalidf("Missing venueSlug.")
	}
	eventCode = strings.TrimSpace(eventCode)
	if eventCode == "" {
		return nil, invalidf("Missing eventCode.")
	}
	v, err := s.venue(ctx, venueSlug)
	if err != nil {
		return nil, err
	}
	date, ok := DateFromEventCode(eventCode)
	if !ok {
		return nil, invalidf("Invalid eventCode format.")
	}
	today := Today(s.now(), s.location(v))
	if date != today {
		return nil, invalidf("Cannot activate an event for %s. Only today's event (%s) can be activated.", date, today)
	}

	ev, err := s.repo.ActivateEvent(ctx, v.ID, eventCode)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound("Event not found for this venue.")
	}
	if err != nil {
		return nil, mapStoreWriteErr("activate event", err)
	}
	log.Info().Str("venue", v.Slug).Str("event_code", ev.EventCode).Msg("event activated")
	return toEventRow(ev), nil
}

// DeactivateAll completes every active event of the venue. Having none is
// not an error.
func (s *Service) DeactivateAll(ctx context.Context, venueSlug string) error {
	v, err := s.venue(ctx, venueSlug)
	if err != nil {
		return err
	}
	n, err := s.repo.CompleteActiveEvents(ctx, v.ID)
	if err != nil {
		return mapStoreWriteErr("end active event", err)
	}
	log.Info().Str("venue", v.Slug).Int64("completed", n).Msg("events deactivated")
	return nil
}
