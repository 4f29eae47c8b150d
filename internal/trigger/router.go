package trigger

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"apt-repo-function/internal/app"
)

// NewRouter builds the custom-handler HTTP routes. Each invocation constructs
// a fresh Service through the factory; the two trigger routes share no state.
func NewRouter(factory app.ServiceFactory) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/BlobTrigger", handleBlobTrigger(factory)).Methods(http.MethodPost)
	router.HandleFunc("/EventGridTrigger", handleEventGridTrigger(factory)).Methods(http.MethodPost)
	return router
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleBlobTrigger(factory app.ServiceFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request, ok := decodeInvokeRequest(w, r)
		if !ok {
			return
		}
		if err := app.HandleBlobEvent(r.Context(), factory, request.BlobName(), request.BlobSize()); err != nil {
			log.Error().Err(err).Msg("blob trigger failed")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeInvokeResponse(w)
	}
}

func handleEventGridTrigger(factory app.ServiceFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request, ok := decodeInvokeRequest(w, r)
		if !ok {
			return
		}
		if err := app.HandleGridEvent(r.Context(), factory, request.EventID()); err != nil {
			log.Error().Err(err).Msg("event grid trigger failed")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeInvokeResponse(w)
	}
}

func decodeInvokeRequest(w http.ResponseWriter, r *http.Request) (InvokeRequest, bool) {
	var request InvokeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Error().Err(err).Msg("malformed invocation payload")
		http.Error(w, "malformed invocation payload", http.StatusBadRequest)
		return InvokeRequest{}, false
	}
	return request, true
}

func writeInvokeResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(InvokeResponse{Outputs: map[string]any{}})
}
