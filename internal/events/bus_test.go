package events

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Bus(t *testing.T) {
	t.Parallel()

	bus := NewBus()

	var received []string
	unsubscribeFirst := bus.Subscribe(func(event Event) {
		received = append(received, "first "+event.Domain)
	})
	bus.Subscribe(func(event Event) {
		received = append(received, "second "+event.Domain)
	})

	now := time.Unix(1700000000, 0)
	event := NewDomainUpdated("sub.example.com",
		netip.MustParseAddr("203.0.113.7"), now)
	bus.Fire(event)

	require.Equal(t, []string{"first sub.example.com", "second sub.example.com"}, received)

	unsubscribeFirst()
	unsubscribeFirst()
	received = nil

	bus.Fire(event)

	assert.Equal(t, []string{"second sub.example.com"}, received)
}

func Test_NewDomainUpdated(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)
	ip := netip.MustParseAddr("2001:db8::1")

	event := NewDomainUpdated("sub.example.com", ip, now)

	assert.NotZero(t, event.ID)
	assert.Equal(t, DomainUpdated, event.Name)
	assert.Equal(t, now, event.Time)
	assert.Equal(t, "sub.example.com", event.Domain)
	assert.Equal(t, ip, event.IPAddress)
	assert.Equal(t, "google_domains_entry_updated: sub.example.com => 2001:db8::1", event.String())
}
