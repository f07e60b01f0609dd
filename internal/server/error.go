package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/qdm12/gdomains-updater/internal/schedule"
)

var ErrContentTypeNotSupported = errors.New("content type is not supported")

type errorResponse struct {
	Error string `json:"error"`
	// Details lists the errors of each domain when
	// several domains failed, such as on a reload.
	Details []string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	response := errorResponse{Error: http.StatusText(status)}
	if err != nil {
		response.Error = err.Error()
		response.Details = joinedMessages(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response)
}

func joinedMessages(err error) (messages []string) {
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return nil
	}
	errs := joined.Unwrap()
	const minErrors = 2
	if len(errs) < minErrors {
		return nil
	}
	messages = make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Error()
	}
	return messages
}

// reloadStatus returns bad gateway if a domain could not be set up
// because of Google Domains, and internal server error otherwise.
func reloadStatus(err error) (status int) {
	if errors.Is(err, schedule.ErrSetupFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
