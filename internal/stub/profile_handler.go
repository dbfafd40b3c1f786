package stub

import (
	"net/http"

	"github.com/simplerentals/rentals-go/util/tracing"
	"github.com/simplerentals/rentals-go/util/values"
)

func (api *API) ProfileHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}
	user, ok := api.Store.User(userID)
	if !ok {
		return respondWithError(nil, "User not found", values.NotFound, &tc)
	}
	return dataResponse(user, values.Success)
}

func (api *API) RoommatesHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	rms := api.Store.Roommates()
	return dataResponse(rms, values.Success)
}

func (api *API) RoommateHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())

	roommateID, err := urlID(r, "roommateID")
	if err != nil {
		return respondWithError(err, "Invalid roommate id", values.Failed, &tc)
	}
	rm, ok := api.Store.Roommate(roommateID)
	if !ok {
		return respondWithError(nil, "Roommate not found", values.NotFound, &tc)
	}
	return dataResponse(rm, values.Success)
}
