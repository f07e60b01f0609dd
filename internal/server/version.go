package server

import (
	"encoding/json"
	"net/http"
)

func (h *handlers) getVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(h.buildInfo)
	if err != nil {
		h.logger.Error("encoding version: " + err.Error())
	}
}
