package handler

import (
	"encoding/json"
	"net/http"

	"github.com/habeshadev/habesha-dating-api/internal/payload"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, payload.ErrorResponse{Msg: msg})
}
