package httptransport

import (
	"errors"
	"net/http"

	apppublic "video-bingo/internal/app/public"
	"video-bingo/internal/eventconfig"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type PublicHandlers struct {
	svc *apppublic.Service
}

func NewPublicHandlers(svc *apppublic.Service) *PublicHandlers {
	return &PublicHandlers{svc: svc}
}

func writePublicError(w http.ResponseWriter, r *http.Request, err error, missing string) {
	switch {
	case errors.Is(err, apppublic.ErrInvalidRequest):
		WriteHTTPError(w, http.StatusBadRequest, missing)
	case errors.Is(err, apppublic.ErrEventNotFound):
		WriteHTTPError(w, http.StatusNotFound, "event_not_found")
	case errors.Is(err, apppublic.ErrEventNotActive):
		WriteHTTPError(w, http.StatusNotFound, "event_not_active")
	default:
		log.Error().Err(err).Str("request_id", chimw.GetReqID(r.Context())).Str("path", r.URL.Path).Msg("public request failed")
		WriteHTTPError(w, http.StatusInternalServerError, msgInternal)
	}
}

// ActiveEvent handles GET /api/public/active-event?venueId=.
func (h *PublicHandlers) ActiveEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.ActiveEvent(r.Context(), r.URL.Query().Get("venueId"))
		if err != nil {
			writePublicError(w, r, err, "Missing venueId")
			return
		}
		writeOK(w, map[string]any{"event": resp.Event})
	}
}

// EventConfig handles GET /api/public/event-config?eventCode=.
func (h *PublicHandlers) EventConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.EventConfig(r.Context(), r.URL.Query().Get("eventCode"))
		if err != nil {
			writePublicError(w, r, err, "Missing eventCode")
			return
		}
		writeOK(w, map[string]any{"event": resp.Event, "patterns": resp.Patterns})
	}
}

// Venue handles GET /api/public/venue?venueSlug=.
func (h *PublicHandlers) Venue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.Venue(r.Context(), r.URL.Query().Get("venueSlug"))
		if err != nil {
			writePublicError(w, r, err, "Missing venueSlug")
			return
		}
		writeOK(w, map[string]any{"venue": resp.Venue})
	}
}

// Resolved handles GET /api/public/events/{event_code}/resolved.
func (h *PublicHandlers) Resolved() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricResolveTotal.Add(1)
		resp, err := h.svc.Resolved(r.Context(), chi.URLParam(r, "event_code"))
		if err != nil {
			if errors.Is(err, apppublic.ErrEventNotFound) || errors.Is(err, apppublic.ErrEventNotActive) {
				metricResolveMisses.Add(1)
			}
			writePublicError(w, r, err, "Missing eventCode")
			return
		}
		switch resp.Event.Source {
		case eventconfig.SourceLocal:
			metricResolveLocalHits.Add(1)
		case eventconfig.SourceDatabase:
			metricResolveDBHits.Add(1)
		case eventconfig.SourceLegacy:
			metricResolveLegacy.Add(1)
		}
		writeOK(w, map[string]any{"event": resp.Event})
	}
}
