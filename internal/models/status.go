package models

import (
	"net/netip"
	"time"
)

type State string

const (
	StateUnset       State = "unset"
	StateRunning     State = "running"
	StateSetupFailed State = "setup failed"
	StateStopped     State = "stopped"
)

// DomainStatus is the host view of a managed domain.
// It never contains the domain credentials.
type DomainStatus struct {
	Domain     string        `json:"domain"`
	State      State         `json:"state"`
	Message    string        `json:"message,omitempty"`
	Interval   time.Duration `json:"interval"`
	CurrentIP  netip.Addr    `json:"current_ip"`
	LastUpdate time.Time     `json:"last_update"`
}
