package httptransport

import (
	"errors"
	"net/http"
	"strings"

	apphost "video-bingo/internal/app/host"
)

type HostHandlers struct {
	svc *apphost.Service
}

func NewHostHandlers(svc *apphost.Service) *HostHandlers {
	return &HostHandlers{svc: svc}
}

type eventRefRequest struct {
	VenueSlug string `json:"venueSlug"`
	EventCode string `json:"eventCode"`
}

type setGamesRequest struct {
	VenueSlug string              `json:"venueSlug"`
	EventCode string              `json:"eventCode,omitempty"`
	Games     []apphost.GameInput `json:"games"`
}

type setBonusRequest struct {
	VenueSlug   string `json:"venueSlug"`
	EventCode   string `json:"eventCode"`
	PlaylistKey string `json:"playlistKey"`
	DisplayMode string `json:"displayMode,omitempty"`
}

// CreateEvent handles POST /api/host/events.
func (h *HostHandlers) CreateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in apphost.CreateEventInput
		if err := decodeBody(r, &in); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, msgInvalidJSON)
			return
		}
		metricEventSaveTotal.Add(1)
		row, err := h.svc.CreateOrActivate(r.Context(), in)
		if err != nil {
			metricEventSaveErrors.Add(1)
			if errors.Is(err, apphost.ErrActivationConflict) {
				metricActivationConflicts.Add(1)
			}
			writeHostError(w, r, err)
			return
		}
		if in.MakeActive {
			metricActivationTotal.Add(1)
		}
		writeOK(w, map[string]any{"event": row})
	}
}

// ActivateEvent handles PATCH /api/host/events.
func (h *HostHandlers) ActivateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in eventRefRequest
		if err := decodeBody(r, &in); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, msgInvalidJSON)
			return
		}
		row, err := h.svc.ActivateExisting(r.Context(), in.VenueSlug, in.EventCode)
		if err != nil {
			if errors.Is(err, apphost.ErrActivationConflict) {
				metricActivationConflicts.Add(1)
			}
			writeHostError(w, r, err)
			return
		}
		metricActivationTotal.Add(1)
		writeOK(w, map[string]any{"event": row})
	}
}

// DeactivateEvents handles DELETE /api/host/events.
func (h *HostHandlers) DeactivateEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in eventRefRequest
		if err := decodeBody(r, &in); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, msgInvalidJSON)
			return
		}
		if err := h.svc.DeactivateAll(r.Context(), in.VenueSlug); err != nil {
			writeHostError(w, r, err)
			return
		}
		metricDeactivationTotal.Add(1)
		writeOK(w, nil)
	}
}

// SetGames handles PATCH /api/host/events/games.
func (h *HostHandlers) SetGames() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in setGamesRequest
		if err := decodeBody(r, &in); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, msgInvalidJSON)
			return
		}
		metricGamesSaveTotal.Add(1)
		code, err := h.svc.SetGames(r.Context(), in.VenueSlug, in.EventCode, in.Games)
		if err != nil {
			metricGamesSaveErrors.Add(1)
			writeHostError(w, r, err)
			return
		}
		writeOK(w, map[string]any{"eventCode": code})
	}
}

// GameConfig handles POST /api/host/events/config.
func (h *HostHandlers) GameConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in eventRefRequest
		if err := decodeBody(r, &in); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, msgInvalidJSON)
			return
		}
		resp, err := h.svc.GameConfig(r.Context(), in.VenueSlug, in.EventCode)
		if err != nil {
			writeHostError(w, r, err)
			return
		}
		writeOK(w, map[string]any{"games": resp.Games, "bonus": resp.Bonus})
	}
}

// Bonus handles GET /api/host/events/bonus?venueSlug=&eventCode=.
func (h *HostHandlers) Bonus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		b, err := h.svc.Bonus(r.Context(), q.Get("venueSlug"), q.Get("eventCode"))
		if err != nil {
			writeHostError(w, r, err)
			return
		}
		writeOK(w, map[string]any{"bonus": b})
	}
}

// SetBonus handles PATCH /api/host/events/bonus.
func (h *HostHandlers) SetBonus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in setBonusRequest
		if err := decodeBody(r, &in); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, msgInvalidJSON)
			return
		}
		b, err := h.svc.SetBonus(r.Context(), in.VenueSlug, in.EventCode, in.PlaylistKey, in.DisplayMode)
		if err != nil {
			writeHostError(w, r, err)
			return
		}
		writeOK(w, map[string]any{"bonus": b})
	}
}

// ClearBonus handles DELETE /api/host/events/bonus.
func (h *HostHandlers) ClearBonus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in eventRefRequest
		if err := decodeBody(r, &in); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, msgInvalidJSON)
			return
		}
		if err := h.svc.ClearBonus(r.Context(), in.VenueSlug, in.EventCode); err != nil {
			writeHostError(w, r, err)
			return
		}
		writeOK(w, nil)
	}
}

func (h *HostHandlers) Venues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venues, err := h.svc.ListVenues(r.Context())
		if err != nil {
			writeHostError(w, r, err)
			return
		}
		writeOK(w, map[string]any{"venues": venues})
	}
}

func (h *HostHandlers) VenueDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := strings.TrimSpace(r.URL.Query().Get("venueSlug"))
		resp, err := h.svc.VenueDashboard(r.Context(), slug)
		if err != nil {
			writeHostError(w, r, err)
			return
		}
		writeOK(w, map[string]any{
			"venue":      resp.Venue,
			"events":     resp.Events,
			"eventGames": resp.EventGames,
		})
	}
}

func (h *HostHandlers) Patterns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patterns, err := h.svc.ListPatterns(r.Context())
		if err != nil {
			writeHostError(w, r, err)
			return
		}
		writeOK(w, map[string]any{"patterns": patterns})
	}
}
