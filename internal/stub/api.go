// Package stub is an in-memory double of the marketplace API. The test
// suite runs the services against it, and cmd/stubrentals serves it for
// local development. Its behavior mirrors the production backend's
// semantics for the group, invitation and conversation workflows.
package stub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/simplerentals/rentals-go/config"
	"github.com/simplerentals/rentals-go/util"
	"github.com/simplerentals/rentals-go/util/values"
)

const (
	defaultIdleTimeout  = time.Minute
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
)

type Handler func(w http.ResponseWriter, r *http.Request) *ServerResponse

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h(w, r)
	if resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	var payload interface{} = resp
	if resp.raw != nil {
		payload = resp.raw
	}
	respByte, err := json.Marshal(payload)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "unable to marshal server response")
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

type API struct {
	Server *http.Server
	Config *config.Config
	Store  *Store
}

func New(cfg *config.Config) *API {
	return &API{
		Config: cfg,
		Store:  NewStore(),
	}
}

func (api *API) Serve() error {
	api.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", api.Config.Port),
		IdleTimeout:  defaultIdleTimeout,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Handler:      api.Router(),
	}
	return api.Server.ListenAndServe()
}

// Router builds the full route tree. Exposed so tests can mount it on an
// httptest server directly.
func (api *API) Router() http.Handler {
	mux := chi.NewRouter()
	mux.Use(RequestTracing)
	mux.Use(Metrics)

	mux.Mount("/groups", api.GroupRoutes())
	mux.Mount("/listings", api.ListingRoutes())
	mux.Mount("/conversations", api.ConversationRoutes())

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/listing/{listingID}/start_conversation", Handler(api.StartConversationHandler))
		r.Method(http.MethodGet, "/applications", Handler(api.ApplicationsHandler))
		r.Method(http.MethodGet, "/applications/management", Handler(api.ManagedApplicationsHandler))
		r.Method(http.MethodGet, "/profile/me", Handler(api.ProfileHandler))
		r.Method(http.MethodGet, "/roommates/viewAll", Handler(api.RoommatesHandler))
		r.Method(http.MethodGet, "/roommates/{roommateID}", Handler(api.RoommateHandler))
	})

	mux.Handle("/metrics", MetricsHandler())

	return mux
}

func (a *API) Shutdown() error {
	return a.Server.Shutdown(context.Background())
}

// urlID parses the named chi URL parameter as an entity id.
func urlID(r *http.Request, name string) (int64, error) {
	return util.StringToInt64(chi.URLParam(r, name))
}
