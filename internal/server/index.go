package server

import (
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"time"

	"github.com/qdm12/gdomains-updater/internal/models"
)

//go:embed index.html
var indexHTML string

//nolint:gochecknoglobals
var indexTemplate = template.Must(template.New("index.html").Parse(indexHTML))

type indexData struct {
	Running int
	Rows    []indexRow
}

type indexRow struct {
	Domain     string
	State      models.State
	StateClass string
	Message    string
	CurrentIP  string
	LastUpdate string
	Interval   time.Duration
}

func (h *handlers) index(w http.ResponseWriter, _ *http.Request) {
	// Prevent caching to ensure status updates are always fresh
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	statuses := h.lister.Statuses()
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Domain < statuses[j].Domain
	})

	now := h.timeNow()
	var data indexData
	data.Rows = make([]indexRow, len(statuses))
	for i, status := range statuses {
		if status.State == models.StateRunning {
			data.Running++
		}
		row := indexRow{
			Domain:     status.Domain,
			State:      status.State,
			StateClass: stateClass(status.State),
			Message:    status.Message,
			LastUpdate: timeSince(now, status.LastUpdate),
			Interval:   status.Interval,
		}
		if status.CurrentIP.IsValid() {
			row.CurrentIP = status.CurrentIP.String()
		}
		data.Rows[i] = row
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(w, data)
	if err != nil {
		h.logger.Error("generating webpage: " + err.Error())
	}
}

func stateClass(state models.State) string {
	switch state {
	case models.StateRunning:
		return "success"
	case models.StateSetupFailed:
		return "error"
	case models.StateUnset:
		return "updating"
	default:
		return "unset"
	}
}

func timeSince(now, t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	elapsed := now.Sub(t).Round(time.Second)
	const day = 24 * time.Hour
	switch {
	case elapsed < time.Minute:
		return "just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%d min ago", int(elapsed.Minutes()))
	case elapsed < day:
		return fmt.Sprintf("%d hrs ago", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(elapsed/day))
	}
}
