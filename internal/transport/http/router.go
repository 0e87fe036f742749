package httptransport

import (
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"

	apphost "video-bingo/internal/app/host"
	apppublic "video-bingo/internal/app/public"
	"video-bingo/internal/config"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"github.com/swaggest/swgui/v5emb"
)

func NewRouter(hostSvc *apphost.Service, publicSvc *apppublic.Service, db Pinger, cfg config.ServerConfig) *chi.Mux {
	hostHandlers := NewHostHandlers(hostSvc)
	publicHandlers := NewPublicHandlers(publicSvc)
	opsHandlers := NewOpsHandlers(db)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		WriteHTTPError(w, http.StatusNotFound, "not_found")
	})

	r.With(APILogMiddleware()).Get("/healthz", opsHandlers.Health())
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Video Bingo API", "/openapi.json", "/docs"))

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Get("/public/active-event", publicHandlers.ActiveEvent())
		r.Get("/public/event-config", publicHandlers.EventConfig())
		r.Get("/public/venue", publicHandlers.Venue())
		r.Get("/public/events/{event_code}/resolved", publicHandlers.Resolved())

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
			r.Route("/host", func(r chi.Router) {
				r.Use(BodyCaptureMiddleware(4096))
				r.Post("/events", hostHandlers.CreateEvent())
				r.Patch("/events", hostHandlers.ActivateEvent())
				r.Delete("/events", hostHandlers.DeactivateEvents())
				r.Patch("/events/games", hostHandlers.SetGames())
				r.Post("/events/config", hostHandlers.GameConfig())
				r.Get("/events/bonus", hostHandlers.Bonus())
				r.Patch("/events/bonus", hostHandlers.SetBonus())
				r.Delete("/events/bonus", hostHandlers.ClearBonus())
				r.Get("/venues", hostHandlers.Venues())
				r.Get("/venue-dashboard", hostHandlers.VenueDashboard())
				r.Get("/patterns", hostHandlers.Patterns())
			})
			r.Get("/debug/vars", expvar.Handler().ServeHTTP)
		})
	})

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 32)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
