package json

import (
	"fmt"
	"net/netip"
	"time"

	"github.com/qdm12/gdomains-updater/internal/events"
	"github.com/qdm12/gdomains-updater/internal/models"
)

// StoreNewIP stores the IP address for the domain if it differs
// from the last IP address stored for this domain.
func (db *Database) StoreNewIP(domain string, ip netip.Addr, t time.Time) (err error) {
	db.Lock()
	defer db.Unlock()

	targetIndex := -1
	for i, record := range db.data.Records {
		if record.Domain == domain {
			targetIndex = i
			break
		}
	}

	if targetIndex == -1 {
		db.data.Records = append(db.data.Records, record{Domain: domain})
		targetIndex = len(db.data.Records) - 1
	}

	target := &db.data.Records[targetIndex]
	if target.Events.GetCurrentIP() == ip {
		return nil
	}

	target.Events = append(target.Events, models.HistoryEvent{
		IP:   ip,
		Time: t,
	})
	return db.write()
}

// GetHistory returns the IP addresses history of the domain,
// ordered from oldest to newest.
func (db *Database) GetHistory(domain string) (history models.History) {
	db.RLock()
	defer db.RUnlock()
	for _, record := range db.data.Records {
		if record.Domain == domain {
			return append(history, record.Events...)
		}
	}
	return nil
}

// HandleEvent is meant to be subscribed to the events bus.
func (db *Database) HandleEvent(event events.Event) {
	if event.Name != events.DomainUpdated {
		return
	}
	err := db.StoreNewIP(event.Domain, event.IPAddress, event.Time)
	if err != nil {
		db.logger.Error(fmt.Sprintf("storing new IP of %s: %s", event.Domain, err))
	}
}
