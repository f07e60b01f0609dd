package events

import (
	"net/netip"
	"time"

	"github.com/google/uuid"
)

// DomainUpdated is the name of the event fired each time
// Google Domains accepted an update for a managed domain.
const DomainUpdated = "google_domains_entry_updated"

type Event struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Time      time.Time  `json:"time"`
	Domain    string     `json:"domain"`
	IPAddress netip.Addr `json:"ip_address"`
}

func NewDomainUpdated(domain string, ip netip.Addr, now time.Time) Event {
	return Event{
		ID:        uuid.New(),
		Name:      DomainUpdated,
		Time:      now,
		Domain:    domain,
		IPAddress: ip,
	}
}

func (e Event) String() string {
	return e.Name + ": " + e.Domain + " => " + e.IPAddress.String()
}
