package stub

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/simplerentals/rentals-go/internal/model"
	"github.com/simplerentals/rentals-go/util"
	"github.com/simplerentals/rentals-go/util/tracing"
	"github.com/simplerentals/rentals-go/util/values"
)

func (api *API) GroupRoutes() chi.Router {
	mux := chi.NewRouter()
	mux.Use(api.RequireLogin)

	mux.Method(http.MethodGet, "/invitations", Handler(api.InvitationsHandler))
	mux.Method(http.MethodPost, "/{groupID}/invite", Handler(api.CreateInvitationHandler))
	mux.Method(http.MethodPatch, "/invitations/{invitationID}/update", Handler(api.UpdateInvitationHandler))
	mux.Method(http.MethodDelete, "/invitations/{invitationID}/delete", Handler(api.DeleteInvitationHandler))

	mux.Method(http.MethodGet, "/{groupID}", Handler(api.GetGroupHandler))
	mux.Method(http.MethodPatch, "/{groupID}/join", Handler(api.JoinGroupHandler))
	mux.Method(http.MethodPatch, "/{groupID}/leave", Handler(api.LeaveGroupHandler))
	mux.Method(http.MethodPatch, "/edit/{groupID}", Handler(api.EditGroupHandler))
	mux.Method(http.MethodPatch, "/manage/{groupID}", Handler(api.ManageGroupHandler))
	mux.Method(http.MethodDelete, "/delete/{groupID}", Handler(api.DeleteGroupHandler))

	return mux
}

func (api *API) GetGroupHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())

	groupID, err := urlID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Invalid group id", values.Failed, &tc)
	}
	group, ok := api.Store.Group(groupID)
	if !ok {
		return respondWithError(nil, "Group not found", values.NotFound, &tc)
	}
	return dataResponse(group, values.Success)
}

func (api *API) JoinGroupHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}

	groupID, err := urlID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Invalid group id", values.Failed, &tc)
	}
	group, status, message, err := api.Store.JoinGroup(groupID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	return dataResponse(group, status)
}

func (api *API) LeaveGroupHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}

	groupID, err := urlID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Invalid group id", values.Failed, &tc)
	}
	group, status, message, err := api.Store.LeaveGroup(groupID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	return dataResponse(group, status)
}

func (api *API) EditGroupHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}

	groupID, err := urlID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Invalid group id", values.Failed, &tc)
	}

	var form model.GroupForm
	if err := util.DecodeJSONBody(&tc, r.Body, &form); err != nil {
		return respondWithError(err, "Invalid request body", values.BadRequestBody, &tc)
	}

	group, status, message, err := api.Store.EditGroup(groupID, userID, form)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	return dataResponse(group, status)
}

func (api *API) ManageGroupHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
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
		Status model.GroupStatus `json:"group_status"`
	}
	if err := util.DecodeJSONBody(&tc, r.Body, &payload); err != nil {
		return respondWithError(err, "Invalid request body", values.BadRequestBody, &tc)
	}

	group, status, message, err := api.Store.ManageGroup(groupID, userID, payload.Status)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	return dataResponse(group, status)
}

func (api *API) DeleteGroupHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}

	groupID, err := urlID(r, "groupID")
	if err != nil {
		return respondWithError(err, "Invalid group id", values.Failed, &tc)
	}
	status, message, err := api.Store.DeleteGroup(groupID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	return nil
}

func (api *API) ApplicationsHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}
	groups := api.Store.Applications(userID)
	if groups == nil {
		groups = []model.Group{}
	}
	return dataResponse(groups, values.Success)
}

func (api *API) ManagedApplicationsHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}
	groups := api.Store.ManagedApplications(userID)
	if groups == nil {
		groups = []model.Group{}
	}
	return dataResponse(groups, values.Success)
}
