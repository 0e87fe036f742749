package httptransport

import (
	"encoding/json"
	"net/http"

	apphost "video-bingo/internal/app/host"
	apppublic "video-bingo/internal/app/public"
	"video-bingo/internal/eventconfig"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type EventResponse struct {
	OK    bool             `json:"ok"`
	Event apphost.EventRow `json:"event"`
}

type SetGamesResponse struct {
	OK        bool   `json:"ok"`
	EventCode string `json:"eventCode"`
}

type GameConfigResponse struct {
	OK    bool              `json:"ok"`
	Games []apphost.GameRow `json:"games"`
	Bonus *apphost.Bonus    `json:"bonus"`
}

type BonusResponse struct {
	OK    bool           `json:"ok"`
	Bonus *apphost.Bonus `json:"bonus"`
}

type VenuesResponse struct {
	OK     bool                `json:"ok"`
	Venues []apphost.VenueItem `json:"venues"`
}

type DashboardResponse struct {
	OK         bool               `json:"ok"`
	Venue      apphost.VenueItem  `json:"venue"`
	Events     []apphost.EventRow `json:"events"`
	EventGames []apphost.GameRow  `json:"eventGames"`
}

type PatternsResponse struct {
	OK       bool                  `json:"ok"`
	Patterns []apphost.PatternItem `json:"patterns"`
}

type ActiveEventResponse struct {
	OK    bool                   `json:"ok"`
	Event *apppublic.ActiveEvent `json:"event"`
}

type EventConfigResponse struct {
	OK       bool                        `json:"ok"`
	Event    *apppublic.EventConfigEvent `json:"event"`
	Patterns []apppublic.PatternItem     `json:"patterns"`
}

type VenueResponse struct {
	OK    bool             `json:"ok"`
	Venue *apppublic.Venue `json:"venue"`
}

type ResolvedResponse struct {
	OK    bool                 `json:"ok"`
	Event eventconfig.Resolved `json:"event"`
}

type venueQuery struct {
	VenueSlug string `query:"venueSlug" required:"true"`
}

type venueIDQuery struct {
	VenueID string `query:"venueId" required:"true"`
}

type eventCodeQuery struct {
	EventCode string `query:"eventCode" required:"true"`
}

type eventRefQuery struct {
	VenueSlug string `query:"venueSlug" required:"true"`
	EventCode string `query:"eventCode" required:"true"`
}

type eventCodePath struct {
	EventCode string `path:"event_code"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Video Bingo API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Host event management and player lookups for music video bingo.")

	add := func(method, path, summary string, req any, resps map[int]any) {
		op, err := r.NewOperationContext(method, path)
		if err != nil {
			return
		}
		op.SetSummary(summary)
		if req != nil {
			op.AddReqStructure(req)
		}
		for status, body := range resps {
			op.AddRespStructure(body, openapi.WithHTTPStatus(status))
		}
		_ = r.AddOperation(op)
	}
	hostErrs := func(ok any, codes ...int) map[int]any {
		out := map[int]any{http.StatusOK: ok, http.StatusUnauthorized: ErrorResponse{}}
		for _, c := range codes {
			out[c] = ErrorResponse{}
		}
		return out
	}

	add(http.MethodGet, "/healthz", "Health check", nil, map[int]any{
		http.StatusOK:                 HealthResponse{},
		http.StatusServiceUnavailable: HealthResponse{},
	})

	add(http.MethodPost, "/api/host/events", "Create or activate the venue's event for a date",
		apphost.CreateEventInput{}, hostErrs(EventResponse{}, http.StatusBadRequest, http.StatusNotFound, http.StatusConflict))
	add(http.MethodPatch, "/api/host/events", "Activate an existing event",
		eventRefRequest{}, hostErrs(EventResponse{}, http.StatusBadRequest, http.StatusNotFound, http.StatusConflict))
	add(http.MethodDelete, "/api/host/events", "Complete every active event of the venue",
		eventRefRequest{}, hostErrs(OKResponse{}, http.StatusBadRequest, http.StatusNotFound))
	add(http.MethodPatch, "/api/host/events/games", "Replace games 1-5 and the optional bonus",
		setGamesRequest{}, hostErrs(SetGamesResponse{}, http.StatusBadRequest, http.StatusNotFound))
	add(http.MethodPost, "/api/host/events/config", "Read an event's games and bonus",
		eventRefRequest{}, hostErrs(GameConfigResponse{}, http.StatusBadRequest, http.StatusNotFound))
	add(http.MethodGet, "/api/host/events/bonus", "Read an event's bonus game",
		eventRefQuery{}, hostErrs(BonusResponse{}, http.StatusBadRequest, http.StatusNotFound))
	add(http.MethodPatch, "/api/host/events/bonus", "Save an event's bonus game",
		setBonusRequest{}, hostErrs(BonusResponse{}, http.StatusBadRequest, http.StatusNotFound))
	add(http.MethodDelete, "/api/host/events/bonus", "Remove an event's bonus game",
		eventRefRequest{}, hostErrs(OKResponse{}, http.StatusBadRequest, http.StatusNotFound))
	add(http.MethodGet, "/api/host/venues", "List venues", nil, hostErrs(VenuesResponse{}))
	add(http.MethodGet, "/api/host/venue-dashboard", "Venue with its latest events and their games",
		venueQuery{}, hostErrs(DashboardResponse{}, http.StatusBadRequest, http.StatusNotFound))
	add(http.MethodGet, "/api/host/patterns", "List winning patterns", nil, hostErrs(PatternsResponse{}))

	add(http.MethodGet, "/api/public/active-event", "The venue's current active event", venueIDQuery{}, map[int]any{
		http.StatusOK:         ActiveEventResponse{},
		http.StatusBadRequest: ErrorResponse{},
	})
	add(http.MethodGet, "/api/public/event-config", "Stored games and patterns of an active event", eventCodeQuery{}, map[int]any{
		http.StatusOK:         EventConfigResponse{},
		http.StatusBadRequest: ErrorResponse{},
	})
	add(http.MethodGet, "/api/public/venue", "Look up a venue by slug", venueQuery{}, map[int]any{
		http.StatusOK:         VenueResponse{},
		http.StatusBadRequest: ErrorResponse{},
	})
	add(http.MethodGet, "/api/public/events/{event_code}/resolved", "Resolved game list for players", eventCodePath{}, map[int]any{
		http.StatusOK:       ResolvedResponse{},
		http.StatusNotFound: ErrorResponse{},
	})

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
