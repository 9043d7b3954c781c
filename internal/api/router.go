package api

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
)

const resourcePath = "/parking-spot"

// Routes обработчики ресурса /parking-spot
type Routes struct {
	CreateParkingSpot http.HandlerFunc
	ListParkingSpots  http.HandlerFunc
	GetParkingSpot    http.HandlerFunc
	LookupParkingSpot http.HandlerFunc
	UpdateParkingSpot http.HandlerFunc
	DeleteParkingSpot http.HandlerFunc
}

// Options настройки роутера. Нулевые Metrics и RateLimiter отключают соответствующий middleware.
type Options struct {
	BasePath       string
	MetricsPath    string
	MetricsHandler http.Handler
	Metrics        middleware.HTTPMetrics
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
	CORSMaxAge     int // секунды
}

// NewRouter собирает роутер со всеми middleware.
// Порядок: CORS -> recover -> logging -> rate limit -> mux (metrics).
func NewRouter(routes Routes, opts Options, log middleware.Logger) http.Handler {
	r := mux.NewRouter()

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
	}

	r.HandleFunc("/health", health).Methods(http.MethodGet)

	if opts.MetricsHandler != nil {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	api := r
	if opts.BasePath != "" && opts.BasePath != "/" {
		api = r.PathPrefix(opts.BasePath).Subrouter()
	}

	// lookup регистрируется раньше /{id}
	api.HandleFunc(resourcePath, routes.CreateParkingSpot).Methods(http.MethodPost)
	api.HandleFunc(resourcePath, routes.ListParkingSpots).Methods(http.MethodGet)
	api.HandleFunc(resourcePath+"/lookup", routes.LookupParkingSpot).Methods(http.MethodGet)
	api.HandleFunc(resourcePath+"/{id}", routes.GetParkingSpot).Methods(http.MethodGet)
	api.HandleFunc(resourcePath+"/{id}", routes.UpdateParkingSpot).Methods(http.MethodPut)
	api.HandleFunc(resourcePath+"/{id}", routes.DeleteParkingSpot).Methods(http.MethodDelete)

	var h http.Handler = r
	if opts.RateLimiter != nil {
		h = opts.RateLimiter.Middleware(h)
	}
	h = middleware.Logging(log)(h)
	h = middleware.Recover(log)(h)

	return cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         opts.CORSMaxAge,
	})(h)
}

func health(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
