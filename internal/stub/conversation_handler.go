package stub

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/simplerentals/rentals-go/internal/model"
	"github.com/simplerentals/rentals-go/util"
	"github.com/simplerentals/rentals-go/util/tracing"
	"github.com/simplerentals/rentals-go/util/values"
)

func (api *API) ConversationRoutes() chi.Router {
	mux := chi.NewRouter()
	mux.Use(api.RequireLogin)

	mux.Method(http.MethodGet, "/", Handler(api.ConversationsHandler))
	mux.Method(http.MethodGet, "/{conversationID}/", Handler(api.GetConversationHandler))
	mux.Method(http.MethodPost, "/{conversationID}/send_message/", Handler(api.SendMessageHandler))
	mux.Method(http.MethodPost, "/leave/{conversationID}", Handler(api.LeaveConversationHandler))
	mux.Method(http.MethodDelete, "/delete/{conversationID}", Handler(api.DeleteConversationHandler))

	return mux
}

func (api *API) ConversationsHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}
	convs := api.Store.Conversations(userID)
	if convs == nil {
		convs = []model.Conversation{}
	}
	return dataResponse(convs, values.Success)
}

func (api *API) GetConversationHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}

	conversationID, err := urlID(r, "conversationID")
	if err != nil {
		return respondWithError(err, "Invalid conversation id", values.Failed, &tc)
	}
	conv, status, message, err := api.Store.Conversation(conversationID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	return dataResponse(conv, status)
}

func (api *API) StartConversationHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}

	listingID, err := urlID(r, "listingID")
	if err != nil {
		return respondWithError(err, "Invalid listing id", values.Failed, &tc)
	}

	var payload struct {
		Participants []int64 `json:"participants"`
	}
	if err := util.DecodeJSONBody(&tc, r.Body, &payload); err != nil {
		return respondWithError(err, "Invalid request body", values.BadRequestBody, &tc)
	}

	conv, status, message, err := api.Store.StartConversation(listingID, userID, payload.Participants)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	return dataResponse(conv, status)
}

func (api *API) SendMessageHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}

	conversationID, err := urlID(r, "conversationID")
	if err != nil {
		return respondWithError(err, "Invalid conversation id", values.Failed, &tc)
	}

	var payload struct {
		Content string `json:"content"`
	}
	if err := util.DecodeJSONBody(&tc, r.Body, &payload); err != nil {
		return respondWithError(err, "Invalid request body", values.BadRequestBody, &tc)
	}

	msg, status, message, err := api.Store.SendMessage(conversationID, userID, payload.Content)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	return dataResponse(msg, status)
}

func (api *API) LeaveConversationHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}

	conversationID, err := urlID(r, "conversationID")
	if err != nil {
		return respondWithError(err, "Invalid conversation id", values.Failed, &tc)
	}
	status, message, err := api.Store.LeaveConversation(conversationID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	return nil
}

func (api *API) DeleteConversationHandler(w http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := tracing.FromContext(r.Context())
	userID, err := actingUser(r.Context())
	if err != nil {
		return respondWithError(err, "not-authorized", values.NotAuthorised, &tc)
	}

	conversationID, err := urlID(r, "conversationID")
	if err != nil {
		return respondWithError(err, "Invalid conversation id", values.Failed, &tc)
	}
	status, message, err := api.Store.DeleteConversation(conversationID, userID)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}
	return nil
}
