package stub

import (
	"net/http"

	"github.com/simplerentals/rentals-go/util"
	"github.com/simplerentals/rentals-go/util/tracing"
	"github.com/simplerentals/rentals-go/util/values"
)

func (api *API) InvitationsHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}
	return dataResponse(api.Store.Invitations(userID), values.Success)
}

func (api *API) CreateInvitationHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}

	groupID, err := urlID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Invalid group id", values.Failed, &tc)
	}

	var payload struct {
		Group       int64 `json:"group"`
		InvitedUser int64 `json:"invited_user"`
	}
	if err := util.DecodeJSONBody(&tc, r.Body, &payload); err != nil {
		return respondWithError(err, "Invalid request body", values.BadRequestBody, &tc)
	}

	inv, status, message, err := api.Store.CreateInvitation(groupID, userID, payload.InvitedUser)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	return dataResponse(inv, status)
}

func (api *API) UpdateInvitationHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}

	invitationID, err := urlID(r, "invitationID")
	if err != nil {
		return respondWithError(err, "Invalid invitation id", values.Failed, &tc)
	}

	var payload struct {
		Accepted bool `json:"accepted"`
	}
	if err := util.DecodeJSONBody(&tc, r.Body, &payload); err != nil {
		return respondWithError(err, "Invalid request body", values.BadRequestBody, &tc)
	}

	inv, status, message, err := api.Store.UpdateInvitation(invitationID, userID, payload.Accepted)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	return dataResponse(inv, status)
}

func (api *API) DeleteInvitationHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}

	invitationID, err := urlID(r, "invitationID")
	if err != nil {
		return respondWithError(err, "Invalid invitation id", values.Failed, &tc)
	}
	status, message, err := api.Store.DeleteInvitation(invitationID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	return nil
}
