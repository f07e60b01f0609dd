package models

import (
	"net/netip"
	"time"
)

type HistoryEvent struct {
	IP   netip.Addr `json:"ip"`
	Time time.Time  `json:"time"`
}

// History is ordered from oldest to newest.
type History []HistoryEvent

// GetCurrentIP returns the most recent IP address, or
// an invalid address if the history is empty.
func (h History) GetCurrentIP() netip.Addr {
	if len(h) == 0 {
		return netip.Addr{}
	}
	return h[len(h)-1].IP
}

func (h History) GetSuccessTime() time.Time {
	if len(h) == 0 {
		return time.Time{}
	}
	return h[len(h)-1].Time
}
