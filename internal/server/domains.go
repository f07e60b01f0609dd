package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

func (h *handlers) getDomains(w http.ResponseWriter, r *http.Request) {
	accept := r.Header.Get("Accept")
	switch accept {
	case "", "*/*", "application/json":
	default:
		writeError(w, http.StatusNotAcceptable,
			fmt.Errorf("%w: %q", ErrContentTypeNotSupported, accept))
		return
	}

	statuses := h.lister.Statuses()
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Domain < statuses[j].Domain
	})

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	err := json.NewEncoder(w).Encode(statuses)
	if err != nil {
		h.logger.Error("encoding domains: " + err.Error())
	}
}

func (h *handlers) reload(w http.ResponseWriter, r *http.Request) {
	err := h.reloader.Reload(r.Context())
	if err != nil {
		h.logger.Warn("reloading domains: " + err.Error())
		writeError(w, reloadStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
