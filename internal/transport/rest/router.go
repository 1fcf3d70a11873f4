package rest

import "net/http"

// Routes groups the handlers mounted by NewRouter.
// Metrics is optional; when nil the metrics path is not served.
type Routes struct {
	Chat        *ChatHandler
	Memorable   *MemorableHandler
	Catalog     *CatalogHandler
	Health      *HealthHandler
	Metrics     http.Handler
	MetricsPath string
}

// NewRouter registers every endpoint on a new ServeMux.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/chat", rt.Chat.Chat)
	mux.HandleFunc("POST /api/example", rt.Chat.Example)
	mux.HandleFunc("POST /api/memorable", rt.Memorable.Generate)
	mux.HandleFunc("GET /api/catalog", rt.Catalog.Catalog)

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	if rt.Metrics != nil {
		mux.Handle("GET "+rt.MetricsPath, rt.Metrics)
	}

	return mux
}
