package manager

import (
	"sort"

	"github.com/qdm12/gdomains-updater/internal/events"
	"github.com/qdm12/gdomains-updater/internal/models"
)

// Statuses returns the status of each managed domain, sorted by domain.
func (m *Manager) Statuses() (statuses []models.DomainStatus) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	statuses = make([]models.DomainStatus, 0, len(m.domains))
	for _, e := range m.domains {
		statuses = append(statuses, e.status)
	}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Domain < statuses[j].Domain
	})
	return statuses
}

// HandleEvent is meant to be subscribed to the events bus.
func (m *Manager) HandleEvent(event events.Event) {
	if event.Name != events.DomainUpdated {
		return
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	e, ok := m.domains[event.Domain]
	if !ok {
		return
	}
	e.status.CurrentIP = event.IPAddress
	e.status.LastUpdate = event.Time
}
