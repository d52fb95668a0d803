package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type successResponse struct {
	Success        bool   `json:"success"`
	PresentationID uint   `json:"presentation_id,omitempty"`
	Message        string `json:"message"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
