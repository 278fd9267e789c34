package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type response struct {
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, data response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("json encode", "err", err)
	}
}

func (h *handlers) writeResult(w http.ResponseWriter, result any) {
	h.writeJSON(w, http.StatusOK, response{Result: result})
}

func (h *handlers) write400(w http.ResponseWriter, err error) {
	slog.Info("400", "err", err)
	h.writeJSON(w, http.StatusBadRequest, response{Error: err.Error()})
}

func (h *handlers) write500(w http.ResponseWriter) {
	h.writeJSON(w, http.StatusInternalServerError, response{Error: "internal server error"})
}
