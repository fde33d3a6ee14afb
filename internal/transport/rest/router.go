package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/heartmarshall/biztrack-backend/internal/config"
	"github.com/heartmarshall/biztrack-backend/internal/transport/middleware"
)

const idPattern = "{id:[0-9a-fA-F-]{36}}"

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// RouterDeps is everything NewRouter mounts.
type RouterDeps struct {
	Logger    *slog.Logger
	Tokens    tokenValidator
	CORS      config.CORSConfig
	Limiter   *middleware.RateLimiter
	AuthLimit int

	Health    *HealthHandler
	Auth      *AuthHandler
	User      *UserHandler
	FollowUps *FollowUpHandler
	Tasks     *TaskHandler
	Org       *OrgHandler
}

// NewRouter builds the HTTP handler. The global middleware wraps the mux
// rather than being registered with Use, so it also runs for unmatched
// routes and CORS preflights.
func NewRouter(d RouterDeps) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/ping", d.Health.Ping).Methods(http.MethodGet)
	r.HandleFunc("/live", d.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", d.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", d.Health.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	authRoutes := api.PathPrefix("/auth").Subrouter()
	if d.Limiter != nil {
		authRoutes.Use(mux.MiddlewareFunc(d.Limiter.Limit(d.AuthLimit)))
	}
	authRoutes.HandleFunc("/register", d.Auth.Register).Methods(http.MethodPost)
	authRoutes.HandleFunc("/login", d.Auth.Login).Methods(http.MethodPost)

	api.HandleFunc("/user", d.User.Get).Methods(http.MethodGet)
	api.HandleFunc("/user", d.User.Update).Methods(http.MethodPatch)

	fu := api.PathPrefix("/followups").Subrouter()
	fu.HandleFunc("", d.FollowUps.List).Methods(http.MethodGet)
	fu.HandleFunc("", d.FollowUps.Create).Methods(http.MethodPost)
	fu.HandleFunc("/due", d.FollowUps.Due).Methods(http.MethodGet)
	fu.HandleFunc("/agenda", d.FollowUps.Agenda).Methods(http.MethodGet)
	fu.HandleFunc("/"+idPattern, d.FollowUps.Get).Methods(http.MethodGet)
	fu.HandleFunc("/"+idPattern, d.FollowUps.Update).Methods(http.MethodPatch)
	fu.HandleFunc("/"+idPattern, d.FollowUps.Delete).Methods(http.MethodDelete)
	fu.HandleFunc("/"+idPattern+"/archive", d.FollowUps.Archive).Methods(http.MethodPost)
	fu.HandleFunc("/"+idPattern+"/complete", d.FollowUps.Complete).Methods(http.MethodPost)
	fu.HandleFunc("/"+idPattern+"/suggest", d.FollowUps.Suggest).Methods(http.MethodGet)

	tasks := api.PathPrefix("/tasks").Subrouter()
	tasks.HandleFunc("", d.Tasks.List).Methods(http.MethodGet)
	tasks.HandleFunc("", d.Tasks.Create).Methods(http.MethodPost)
	tasks.HandleFunc("/"+idPattern, d.Tasks.Get).Methods(http.MethodGet)
	tasks.HandleFunc("/"+idPattern, d.Tasks.Update).Methods(http.MethodPatch)
	tasks.HandleFunc("/"+idPattern, d.Tasks.Delete).Methods(http.MethodDelete)

	orgRoutes := api.PathPrefix("/org").Subrouter()
	orgRoutes.HandleFunc("", d.Org.List).Methods(http.MethodGet)
	orgRoutes.HandleFunc("", d.Org.Create).Methods(http.MethodPost)
	orgRoutes.HandleFunc("/tree", d.Org.Tree).Methods(http.MethodGet)
	orgRoutes.HandleFunc("/"+idPattern, d.Org.Update).Methods(http.MethodPatch)
	orgRoutes.HandleFunc("/"+idPattern, d.Org.Delete).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	var h http.Handler = r
	for _, mw := range []middleware.Middleware{
		middleware.Auth(d.Tokens),
		middleware.CORS(d.CORS),
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		middleware.RequestID(),
	} {
		h = mw(h)
	}
	return h
}
