package httptransport

import "expvar"

var (
	metricEventSaveTotal  = expvar.NewInt("event_save_total")
	metricEventSaveErrors = expvar.NewInt("event_save_errors_total")

	metricActivationTotal     = expvar.NewInt("event_activation_total")
	metricActivationConflicts = expvar.NewInt("event_activation_conflicts_total")
	metricDeactivationTotal   = expvar.NewInt("event_deactivation_total")

	metricGamesSaveTotal  = expvar.NewInt("event_games_save_total")
	metricGamesSaveErrors = expvar.NewInt("event_games_save_errors_total")

	metricResolveTotal     = expvar.NewInt("resolve_total")
	metricResolveMisses    = expvar.NewInt("resolve_misses_total")
	metricResolveLocalHits = expvar.NewInt("resolve_local_hits_total")
	metricResolveDBHits    = expvar.NewInt("resolve_database_hits_total")
	metricResolveLegacy    = expvar.NewInt("resolve_legacy_hits_total")
)
