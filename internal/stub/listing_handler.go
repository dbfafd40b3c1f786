package stub

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/simplerentals/rentals-go/internal/model"
	"github.com/simplerentals/rentals-go/util"
	"github.com/simplerentals/rentals-go/util/tracing"
	"github.com/simplerentals/rentals-go/util/values"
)

func (api *API) ListingRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/viewAll", Handler(api.SearchListingsHandler))
	mux.Method(http.MethodGet, "/{listingID}", Handler(api.GetListingHandler))
	mux.Method(http.MethodGet, "/{listingID}/groups", Handler(api.ListingGroupsHandler))

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/{listingID}/groups/post", Handler(api.CreateGroupHandler))
	})

	return mux
}

func (api *API) GetListingHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())

	listingID, err := urlID(r, "listingID")
	if err != nil {
		return respondWithError(err, "Invalid listing id", values.Failed, &tc)
	}
	listing, ok := api.Store.Listing(listingID)
	if !ok {
		return respondWithError(nil, "Listing not found", values.NotFound, &tc)
	}
	return dataResponse(listing, values.Success)
}

func (api *API) SearchListingsHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	q := r.URL.Query()

	search := model.ListingSearch{
		City:         q.Get("city"),
		PropertyType: q.Get("property_type"),
		Ordering:     q.Get("ordering"),
	}
	search.PriceMin, _ = strconv.ParseFloat(q.Get("price_min"), 64)
	search.PriceMax, _ = strconv.ParseFloat(q.Get("price_max"), 64)
	search.Bedrooms, _ = strconv.Atoi(q.Get("bedrooms"))
	search.Bathrooms, _ = strconv.Atoi(q.Get("bathrooms"))
	search.Owner, _ = strconv.ParseInt(q.Get("owner"), 10, 64)

	return dataResponse(api.Store.SearchListings(search), values.Success)
}

func (api *API) ListingGroupsHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())

	listingID, err := urlID(r, "listingID")
	if err != nil {
		return respondWithError(err, "Invalid listing id", values.Failed, &tc)
	}
	if _, ok := api.Store.Listing(listingID); !ok {
		return respondWithError(nil, "Listing not found", values.NotFound, &tc)
	}
	groups := api.Store.ListingGroups(listingID)
	if groups == nil {
		groups = []model.Group{}
	}
	return dataResponse(groups, values.Success)
}

func (api *API) CreateGroupHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}

	listingID, err := urlID(r, "listingID")
	if err != nil {
		return respondWithError(err, "Invalid listing id", values.Failed, &tc)
	}

	var form model.GroupForm
	if err := util.DecodeJSONBody(&tc, r.Body, &form); err != nil {
		return respondWithError(err, "Invalid request body", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(form); err != nil {
		return respondWithError(err, "Invalid group form", values.Unprocessable, &tc)
	}

	group, status, message, err := api.Store.CreateGroup(listingID, userID, form)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	return dataResponse(group, status)
}
